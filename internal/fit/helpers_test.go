package fit

import (
	"github.com/smith505/ideafit/internal/library"
	"github.com/smith505/ideafit/internal/types"
)

// newTestLibrary builds a small differentiated library: a developer-leaning
// extension, a no-code SMB widget, and a heavyweight marketplace idea.
func newTestLibrary() *library.Library {
	lib, err := library.New(library.Document{
		Candidates: []types.Candidate{
			{
				ID:             "idea-ext",
				Name:           "Tab Auditor",
				TrackID:        "chrome-extension",
				Audience:       "developers and other knowledge workers",
				TimeboxMinutes: 20,
				PricingModel:   types.PricingOneTime,
				PricingRange:   "$29 one-time",
				Competitors: []types.Competitor{
					{Name: "TabHog"}, {Name: "Session Buddy"}, {Name: "OneTab"},
				},
				VoCQuotes: []types.VoCQuote{
					{URL: "https://example.com/1", PainTag: "tab-overload"},
					{URL: "https://example.com/2", PainTag: "memory"},
					{URL: "https://example.com/3", PainTag: "lost-work"},
				},
			},
			{
				ID:             "idea-widget",
				Name:           "Review Widget",
				TrackID:        "smb-widget",
				Audience:       "small business owners with storefronts",
				TimeboxMinutes: 40,
				PricingModel:   types.PricingSubscription,
				PricingRange:   "$19-$49/mo",
				Competitors: []types.Competitor{
					{Name: "Trustpilot"}, {Name: "Yotpo"},
				},
			},
			{
				ID:           "idea-marketplace",
				Name:         "Vendor Marketplace",
				TrackID:      "marketplace",
				Audience:     "enterprise procurement teams",
				TimeboxDays:  60,
				PricingModel: types.PricingSubscription,
				PricingRange: "$99/mo",
			},
		},
		Tracks: []types.Track{
			{ID: "chrome-extension", Name: "Chrome Extension"},
			{ID: "smb-widget", Name: "SMB Widget"},
			{ID: "marketplace", Name: "Marketplace"},
		},
	})
	if err != nil {
		panic(err)
	}
	return lib
}

// devProfile is a developer with little time who wants one-time sales.
func devProfile() types.FitProfile {
	return types.FitProfile{
		TimeWeekly:       types.TimeWeekly2to5,
		TechComfort:      types.TechComfortDev,
		SupportTolerance: types.SupportLow,
		RevenueGoal:      types.RevenueSide,
		BuildPreference:  types.BuildSolo,
		AudienceAccess:   []string{"developers"},
		RiskTolerance:    types.RiskMedium,
		ExistingSkills:   []string{},
	}
}

// nonTechProfile is a non-technical user with SMB reach and big revenue goals.
func nonTechProfile() types.FitProfile {
	return types.FitProfile{
		TimeWeekly:       types.TimeWeekly11to20,
		TechComfort:      types.TechComfortNoCode,
		SupportTolerance: types.SupportHigh,
		RevenueGoal:      types.RevenueSalary,
		BuildPreference:  types.BuildAI,
		AudienceAccess:   []string{"smb"},
		RiskTolerance:    types.RiskLow,
		ExistingSkills:   []string{"sales"},
	}
}
