// Package types provides type definitions for structured data used throughout the ideafit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Weekly-hours buckets for TimeWeekly
const (
	TimeWeekly2to5   = "2-5"
	TimeWeekly6to10  = "6-10"
	TimeWeekly11to20 = "11-20"
	TimeWeekly20Plus = "20+"
)

// Tech comfort levels
const (
	TechComfortNone   = "none"
	TechComfortNoCode = "nocode"
	TechComfortSome   = "some"
	TechComfortDev    = "dev"
)

// Support tolerance levels
const (
	SupportNone   = "none"
	SupportLow    = "low"
	SupportMedium = "medium"
	SupportHigh   = "high"
)

// Revenue goals
const (
	RevenueSide   = "side"
	RevenueRamen  = "ramen"
	RevenueSalary = "salary"
	RevenueScale  = "scale"
)

// Build preferences
const (
	BuildSolo      = "solo"
	BuildAI        = "ai"
	BuildFreelance = "freelance"
	BuildCofounder = "cofounder"
)

// Risk tolerance levels
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// AudienceNone is the explicit "no audience access" token a user can select.
const AudienceNone = "none"

// FitProfile is the canonical, fully-defaulted view of a user's quiz answers.
// Every field is always populated with a valid enum value or an empty (never
// nil) collection; downstream scoring never sees a missing field.
type FitProfile struct {
	TimeWeekly       string   `json:"time_weekly"`
	TechComfort      string   `json:"tech_comfort"`
	SupportTolerance string   `json:"support_tolerance"`
	RevenueGoal      string   `json:"revenue_goal"`
	BuildPreference  string   `json:"build_preference"`
	AudienceAccess   []string `json:"audience_access"`
	RiskTolerance    string   `json:"risk_tolerance"`
	ExistingSkills   []string `json:"existing_skills"`
}

// HasAudience reports whether the profile lists the given audience access token.
func (p *FitProfile) HasAudience(token string) bool {
	for _, a := range p.AudienceAccess {
		if a == token {
			return true
		}
	}
	return false
}
