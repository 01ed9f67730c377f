package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smith505/ideafit/internal/types"
)

func TestTimeFit_QuickBuildForFewHours(t *testing.T) {
	c := &types.Candidate{TimeboxMinutes: 20}
	p := &types.FitProfile{TimeWeekly: types.TimeWeekly2to5}

	res := timeFit(c, "", p)

	assert.Equal(t, 20, res.Points)
	assert.Contains(t, res.Reason, "Quick to build")
}

func TestTimeFit_TooBigForFewHours(t *testing.T) {
	c := &types.Candidate{TimeboxMinutes: 31}
	p := &types.FitProfile{TimeWeekly: types.TimeWeekly2to5}

	res := timeFit(c, "", p)

	assert.Equal(t, 0, res.Points)
	assert.Empty(t, res.Reason)
}

func TestTimeFit_MidBucket(t *testing.T) {
	c := &types.Candidate{TimeboxMinutes: 45}
	p := &types.FitProfile{TimeWeekly: types.TimeWeekly6to10}

	res := timeFit(c, "", p)

	assert.Equal(t, 15, res.Points)
	assert.NotEmpty(t, res.Reason)
}

func TestTimeFit_BigBucketsAlwaysScore(t *testing.T) {
	c := &types.Candidate{TimeboxDays: 90}

	for _, bucket := range []string{types.TimeWeekly11to20, types.TimeWeekly20Plus} {
		p := &types.FitProfile{TimeWeekly: bucket}
		res := timeFit(c, "", p)
		assert.Equal(t, 10, res.Points, "bucket %s", bucket)
	}
}

func TestTimeFit_MissingTimeboxDegrades(t *testing.T) {
	c := &types.Candidate{}
	p := &types.FitProfile{TimeWeekly: types.TimeWeekly2to5}

	res := timeFit(c, "", p)

	assert.Equal(t, 0, res.Points)
}

func TestTechFit_DevOnExtensionTrack(t *testing.T) {
	p := &types.FitProfile{TechComfort: types.TechComfortDev}

	res := techFit(nil, "Chrome Extension", p)

	assert.Equal(t, 20, res.Points)
	assert.NotEmpty(t, res.Reason)
	assert.Len(t, res.Chips, 1)
	assert.Equal(t, types.ChipMatch, res.Chips[0].Type)
}

func TestTechFit_DevOnOtherTrack(t *testing.T) {
	p := &types.FitProfile{TechComfort: types.TechComfortDev}

	res := techFit(nil, "Marketplace", p)

	assert.Equal(t, 15, res.Points)
}

func TestTechFit_NoCodeOnWidgetTrack(t *testing.T) {
	for _, comfort := range []string{types.TechComfortNoCode, types.TechComfortSome} {
		p := &types.FitProfile{TechComfort: comfort}
		res := techFit(nil, "SMB Widget", p)
		assert.Equal(t, 15, res.Points, "comfort %s", comfort)
		assert.Len(t, res.Chips, 1)
		assert.Equal(t, types.ChipAvoided, res.Chips[0].Type)
	}
}

func TestTechFit_NoneIsFloor(t *testing.T) {
	p := &types.FitProfile{TechComfort: types.TechComfortNone}

	res := techFit(nil, "Chrome Extension", p)

	assert.Equal(t, 5, res.Points)
	assert.Empty(t, res.Reason)
	assert.Empty(t, res.Chips)
}

func TestSupportFit_LowToleranceOneTime(t *testing.T) {
	c := &types.Candidate{PricingModel: types.PricingOneTime}

	for _, tolerance := range []string{types.SupportNone, types.SupportLow} {
		p := &types.FitProfile{SupportTolerance: tolerance}
		res := supportFit(c, "", p)
		assert.Equal(t, 15, res.Points, "tolerance %s", tolerance)
		assert.Len(t, res.Chips, 1)
		assert.Equal(t, types.ChipAvoided, res.Chips[0].Type)
	}
}

func TestSupportFit_LowToleranceSubscription(t *testing.T) {
	c := &types.Candidate{PricingModel: types.PricingSubscription}
	p := &types.FitProfile{SupportTolerance: types.SupportLow}

	res := supportFit(c, "", p)

	assert.Equal(t, 5, res.Points)
	assert.Empty(t, res.Reason)
}

func TestSupportFit_TolerantFlat(t *testing.T) {
	c := &types.Candidate{PricingModel: types.PricingSubscription}

	for _, tolerance := range []string{types.SupportMedium, types.SupportHigh} {
		p := &types.FitProfile{SupportTolerance: tolerance}
		res := supportFit(c, "", p)
		assert.Equal(t, 10, res.Points, "tolerance %s", tolerance)
	}
}

func TestAudienceFit_SMBMatch(t *testing.T) {
	c := &types.Candidate{Audience: "Small business owners with storefronts"}
	p := &types.FitProfile{AudienceAccess: []string{"smb"}}

	res := audienceFit(c, "", p)

	assert.Equal(t, 20, res.Points)
	assert.NotEmpty(t, res.Reason)
}

func TestAudienceFit_DeveloperKnowledgeWorkerMatch(t *testing.T) {
	c := &types.Candidate{Audience: "knowledge workers drowning in tabs"}
	p := &types.FitProfile{AudienceAccess: []string{"developers"}}

	res := audienceFit(c, "", p)

	assert.Equal(t, 15, res.Points)
}

func TestAudienceFit_ExplicitNone(t *testing.T) {
	c := &types.Candidate{Audience: "small business owners"}
	p := &types.FitProfile{AudienceAccess: []string{types.AudienceNone}}

	res := audienceFit(c, "", p)

	assert.Equal(t, 5, res.Points)
	assert.Empty(t, res.Reason)
}

func TestAudienceFit_Default(t *testing.T) {
	c := &types.Candidate{Audience: "enterprise teams"}
	p := &types.FitProfile{AudienceAccess: []string{}}

	res := audienceFit(c, "", p)

	assert.Equal(t, 10, res.Points)
}

func TestAudienceFit_EmptyAudienceTextDegrades(t *testing.T) {
	c := &types.Candidate{}
	p := &types.FitProfile{AudienceAccess: []string{"smb"}}

	res := audienceFit(c, "", p)

	assert.Equal(t, 10, res.Points)
}

func TestRevenueFit_SideCheapPrice(t *testing.T) {
	c := &types.Candidate{PricingRange: "$29 one-time"}
	p := &types.FitProfile{RevenueGoal: types.RevenueSide}

	res := revenueFit(c, "", p)

	assert.Equal(t, 15, res.Points)
}

func TestRevenueFit_SideMissingPriceDegrades(t *testing.T) {
	c := &types.Candidate{PricingRange: "free forever"}
	p := &types.FitProfile{RevenueGoal: types.RevenueSide}

	res := revenueFit(c, "", p)

	assert.Equal(t, 5, res.Points)
	assert.Empty(t, res.Reason)
}

func TestRevenueFit_RamenBand(t *testing.T) {
	p := &types.FitProfile{RevenueGoal: types.RevenueRamen}

	in := revenueFit(&types.Candidate{PricingRange: "$49/mo"}, "", p)
	below := revenueFit(&types.Candidate{PricingRange: "$9/mo"}, "", p)
	above := revenueFit(&types.Candidate{PricingRange: "$199/mo"}, "", p)

	assert.Equal(t, 15, in.Points)
	assert.Equal(t, 5, below.Points)
	assert.Equal(t, 5, above.Points)
}

func TestRevenueFit_ScaleSubscription(t *testing.T) {
	p := &types.FitProfile{RevenueGoal: types.RevenueScale}

	sub := revenueFit(&types.Candidate{PricingModel: types.PricingSubscription, PricingRange: "$99/mo"}, "", p)
	oneTime := revenueFit(&types.Candidate{PricingModel: types.PricingOneTime, PricingRange: "$99"}, "", p)

	assert.Equal(t, 15, sub.Points)
	assert.Equal(t, 10, oneTime.Points)
}

func TestCompleteness_FullEvidence(t *testing.T) {
	c := &types.Candidate{
		Competitors: make([]types.Competitor, 3),
		VoCQuotes:   make([]types.VoCQuote, 3),
	}

	res := completeness(c, "", nil)

	assert.Equal(t, 10, res.Points)
}

func TestCompleteness_TwoCompetitorsNoQuotes(t *testing.T) {
	c := &types.Candidate{Competitors: make([]types.Competitor, 2)}

	res := completeness(c, "", nil)

	assert.Equal(t, 5, res.Points)
}

func TestCompleteness_ThinEvidence(t *testing.T) {
	res := completeness(&types.Candidate{}, "", nil)

	assert.Equal(t, 0, res.Points)
	assert.Empty(t, res.Reason)
}

func TestParseDollar(t *testing.T) {
	assert.Equal(t, 29, parseDollar("$29 one-time"))
	assert.Equal(t, 19, parseDollar("$19-$49/mo"))
	assert.Equal(t, 0, parseDollar("free"))
	assert.Equal(t, 0, parseDollar(""))
	assert.Equal(t, 1500, parseDollar("around $1500 per seat"))
}
