// Package quiz normalizes raw quiz answers into a canonical fit profile.
package quiz

import (
	"github.com/smith505/ideafit/internal/types"
)

// Question identifiers used by the quiz client.
const (
	KeyTimeWeekly       = "time_weekly"
	KeyTechComfort      = "tech_comfort"
	KeySupportTolerance = "support_tolerance"
	KeyRevenueGoal      = "revenue_goal"
	KeyBuildPreference  = "build_preference"
	KeyAudienceAccess   = "audience_access"
	KeyRiskTolerance    = "risk_tolerance"
	KeyExistingSkills   = "existing_skills"
)

// Default values applied when an answer is absent, malformed, or not a known
// enum token.
const (
	DefaultTimeWeekly       = types.TimeWeekly6to10
	DefaultTechComfort      = types.TechComfortSome
	DefaultSupportTolerance = types.SupportMedium
	DefaultRevenueGoal      = types.RevenueSide
	DefaultBuildPreference  = types.BuildSolo
	DefaultRiskTolerance    = types.RiskMedium
)

var (
	validTimeWeekly = map[string]bool{
		types.TimeWeekly2to5:   true,
		types.TimeWeekly6to10:  true,
		types.TimeWeekly11to20: true,
		types.TimeWeekly20Plus: true,
	}
	validTechComfort = map[string]bool{
		types.TechComfortNone:   true,
		types.TechComfortNoCode: true,
		types.TechComfortSome:   true,
		types.TechComfortDev:    true,
	}
	validSupport = map[string]bool{
		types.SupportNone:   true,
		types.SupportLow:    true,
		types.SupportMedium: true,
		types.SupportHigh:   true,
	}
	validRevenueGoal = map[string]bool{
		types.RevenueSide:   true,
		types.RevenueRamen:  true,
		types.RevenueSalary: true,
		types.RevenueScale:  true,
	}
	validBuildPreference = map[string]bool{
		types.BuildSolo:      true,
		types.BuildAI:        true,
		types.BuildFreelance: true,
		types.BuildCofounder: true,
	}
	validRiskTolerance = map[string]bool{
		types.RiskLow:    true,
		types.RiskMedium: true,
		types.RiskHigh:   true,
	}
)

// BuildFitProfile converts raw quiz answers into a fully-defaulted FitProfile.
// Total: never fails, never returns a profile with a missing field. Unknown
// enum tokens fall back to the field default rather than leaking through to
// scoring.
func BuildFitProfile(answers types.QuizAnswers) types.FitProfile {
	return types.FitProfile{
		TimeWeekly:       enumOr(answers, KeyTimeWeekly, validTimeWeekly, DefaultTimeWeekly),
		TechComfort:      enumOr(answers, KeyTechComfort, validTechComfort, DefaultTechComfort),
		SupportTolerance: enumOr(answers, KeySupportTolerance, validSupport, DefaultSupportTolerance),
		RevenueGoal:      enumOr(answers, KeyRevenueGoal, validRevenueGoal, DefaultRevenueGoal),
		BuildPreference:  enumOr(answers, KeyBuildPreference, validBuildPreference, DefaultBuildPreference),
		AudienceAccess:   answers.StringList(KeyAudienceAccess),
		RiskTolerance:    enumOr(answers, KeyRiskTolerance, validRiskTolerance, DefaultRiskTolerance),
		ExistingSkills:   answers.StringList(KeyExistingSkills),
	}
}

// enumOr reads a single-token answer and validates it against the allowed set.
func enumOr(answers types.QuizAnswers, key string, valid map[string]bool, fallback string) string {
	v := answers.StringOr(key, fallback)
	if !valid[v] {
		return fallback
	}
	return v
}
