// Package types provides type definitions for structured data used throughout the ideafit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RankedIdea is the result of scoring one candidate against one profile.
// Ephemeral: derived per request, persisted only as part of a report snapshot.
type RankedIdea struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
	Track  string `json:"track"`
}

// RankResult is the full output of ranking a library against one profile.
type RankResult struct {
	Profile     FitProfile   `json:"profile"`
	RankedIdeas []RankedIdea `json:"ranked_ideas"`
	FitTrack    string       `json:"fit_track"`
	WinnerID    string       `json:"winner_id"`
}

// ChipType tags a match chip as a positive alignment or an avoided downside.
type ChipType string

// Chip types
const (
	ChipMatch   ChipType = "match"
	ChipAvoided ChipType = "avoided"
)

// MatchChip is a short explanatory tag shown next to a matched idea.
type MatchChip struct {
	Label string   `json:"label"`
	Type  ChipType `json:"type"`
}

// ConfidenceLevel classifies how decisively the top match beats the runner-up.
type ConfidenceLevel string

// Confidence levels
const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Confidence is the confidence bucket for a ranking plus a display sentence.
type Confidence struct {
	Level       ConfidenceLevel `json:"level"`
	Explanation string          `json:"explanation"`
}
