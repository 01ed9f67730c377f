// Package fit implements the deterministic idea-ranking core: factor
// predicates, the candidate scorer, the ranker, and the derived artifacts
// (match chips, confidence bucket, wildcard pick).
package fit

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/smith505/ideafit/internal/types"
)

// Factor point values. The six factor maxima sum to 100.
const (
	timeFitMax      = 20
	techFitMax      = 20
	supportFitMax   = 15
	audienceFitMax  = 20
	revenueFitMax   = 15
	completenessMax = 10
)

// FactorResult is the tagged outcome of one factor predicate. Both the scorer
// and the chip generator consume these, so the comparison rules live in
// exactly one place. Reason is empty when the factor landed in its
// lowest-scoring branch; Chips carry the UI labels the branch justifies.
type FactorResult struct {
	Points int
	Reason string
	Chips  []types.MatchChip
}

// factorFunc evaluates one scoring dimension for a (candidate, profile) pair.
// trackName is the resolved display name of the candidate's track.
type factorFunc func(c *types.Candidate, trackName string, p *types.FitProfile) FactorResult

// factors lists the predicates in evaluation order. Scorer reasons and chip
// ordering both follow this order.
var factors = []factorFunc{
	timeFit,
	techFit,
	supportFit,
	audienceFit,
	revenueFit,
	completeness,
}

// timeFit compares the candidate's timebox against the weekly-hours bucket.
// Max 20 points; candidates too big for the available hours score 0.
func timeFit(c *types.Candidate, _ string, p *types.FitProfile) FactorResult {
	build := c.BuildTime()

	switch p.TimeWeekly {
	case types.TimeWeekly2to5:
		if build > 0 && build <= 30 {
			return FactorResult{
				Points: timeFitMax,
				Reason: "Quick to build with the few hours you have each week",
				Chips:  []types.MatchChip{{Label: "Fits your schedule", Type: types.ChipMatch}},
			}
		}
	case types.TimeWeekly6to10:
		if build > 0 && build <= 45 {
			return FactorResult{
				Points: 15,
				Reason: "Fits comfortably in your weekly schedule",
				Chips:  []types.MatchChip{{Label: "Fits your schedule", Type: types.ChipMatch}},
			}
		}
	case types.TimeWeekly11to20, types.TimeWeekly20Plus:
		// With this much weekly time any candidate build fits.
		return FactorResult{
			Points: 10,
			Reason: "You have enough hours for a build of any size",
		}
	}

	return FactorResult{}
}

// techFit matches the profile's technical comfort against the candidate's
// track. Max 20 points; the floor of 5 covers non-technical users on
// technical tracks.
func techFit(_ *types.Candidate, trackName string, p *types.FitProfile) FactorResult {
	track := strings.ToLower(trackName)

	switch p.TechComfort {
	case types.TechComfortDev:
		if strings.Contains(track, "extension") || strings.Contains(track, "tool") {
			return FactorResult{
				Points: techFitMax,
				Reason: "Plays directly to your developer skills",
				Chips:  []types.MatchChip{{Label: "Developer-friendly build", Type: types.ChipMatch}},
			}
		}
		return FactorResult{
			Points: 15,
			Reason: "Well within reach for a developer",
		}
	case types.TechComfortNoCode, types.TechComfortSome:
		if strings.Contains(track, "widget") || strings.Contains(track, "smb") {
			return FactorResult{
				Points: 15,
				Reason: "Buildable without heavy engineering",
				Chips:  []types.MatchChip{{Label: "No heavy coding required", Type: types.ChipAvoided}},
			}
		}
		return FactorResult{
			Points: 10,
			Reason: "Manageable at your technical comfort level",
		}
	default:
		return FactorResult{Points: 5}
	}
}

// supportFit rewards one-time pricing for users who don't want an ongoing
// support load. Max 15 points.
func supportFit(c *types.Candidate, _ string, p *types.FitProfile) FactorResult {
	switch p.SupportTolerance {
	case types.SupportNone, types.SupportLow:
		if c.PricingModel == types.PricingOneTime {
			return FactorResult{
				Points: supportFitMax,
				Reason: "One-time sales keep ongoing support to a minimum",
				Chips:  []types.MatchChip{{Label: "Low support burden", Type: types.ChipAvoided}},
			}
		}
		return FactorResult{Points: 5}
	default:
		return FactorResult{
			Points: 10,
			Reason: "Support load sits inside what you're willing to take on",
		}
	}
}

// audienceFit does a tiered substring match of the profile's audience access
// against the candidate's audience text. Max 20 points.
func audienceFit(c *types.Candidate, _ string, p *types.FitProfile) FactorResult {
	audience := strings.ToLower(c.Audience)

	if p.HasAudience("smb") && strings.Contains(audience, "small business") {
		return FactorResult{
			Points: audienceFitMax,
			Reason: "You already reach the small businesses this serves",
			Chips:  []types.MatchChip{{Label: "Direct line to buyers", Type: types.ChipMatch}},
		}
	}
	if p.HasAudience("developers") && strings.Contains(audience, "knowledge worker") {
		return FactorResult{
			Points: 15,
			Reason: "Your network overlaps with the target users",
			Chips:  []types.MatchChip{{Label: "Audience you can reach", Type: types.ChipMatch}},
		}
	}
	if p.HasAudience(types.AudienceNone) {
		return FactorResult{Points: 5}
	}
	return FactorResult{
		Points: 10,
		Reason: "Audience is reachable through open channels",
	}
}

// revenueFit matches the candidate's price point and pricing model against
// the profile's revenue goal. Max 15 points.
func revenueFit(c *types.Candidate, _ string, p *types.FitProfile) FactorResult {
	price := parseDollar(c.PricingRange)

	switch p.RevenueGoal {
	case types.RevenueSide:
		if price > 0 && price <= 50 {
			return FactorResult{
				Points: revenueFitMax,
				Reason: "Priced for easy side-income sales",
			}
		}
	case types.RevenueRamen:
		if price >= 20 && price <= 100 {
			return FactorResult{
				Points: revenueFitMax,
				Reason: "Price point can stack up to real monthly income",
			}
		}
	case types.RevenueSalary, types.RevenueScale:
		if c.PricingModel == types.PricingSubscription {
			return FactorResult{
				Points: revenueFitMax,
				Reason: "Recurring revenue compounds toward your goal",
				Chips:  []types.MatchChip{{Label: "Recurring revenue", Type: types.ChipMatch}},
			}
		}
		return FactorResult{
			Points: 10,
			Reason: "Revenue model can still grow toward your goal",
		}
	}

	return FactorResult{Points: 5}
}

// completeness rewards candidates with strong validation evidence. Max 10
// points; thin evidence scores 0.
func completeness(c *types.Candidate, _ string, _ *types.FitProfile) FactorResult {
	if len(c.Competitors) >= 3 && len(c.VoCQuotes) >= 3 {
		return FactorResult{
			Points: completenessMax,
			Reason: "Backed by named competitors and real user complaints",
			Chips:  []types.MatchChip{{Label: "Evidence-backed demand", Type: types.ChipMatch}},
		}
	}
	if len(c.Competitors) >= 2 {
		return FactorResult{
			Points: 5,
			Reason: "Existing competitors prove people pay for this",
		}
	}
	return FactorResult{}
}

var dollarPattern = regexp.MustCompile(`\$(\d+)`)

// parseDollar extracts the first $<number> token from a pricing-range string.
// Returns 0 when no dollar figure is present, which revenueFit treats as the
// lowest branch.
func parseDollar(pricingRange string) int {
	m := dollarPattern.FindStringSubmatch(pricingRange)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
