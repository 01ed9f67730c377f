// Package types provides type definitions for structured data used throughout the ideafit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Pricing models for a candidate idea
const (
	PricingOneTime      = "one-time"
	PricingSubscription = "subscription"
)

// Candidate is one startup-idea record in the static library. Records are
// produced by an offline ingestion process and are read-only at request time.
type Candidate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TrackID     string `json:"track_id"`
	Wedge       string `json:"wedge"`
	Description string `json:"description"`
	Audience    string `json:"audience"`

	// Build cost: exactly one of these is normally set by ingestion.
	TimeboxMinutes int `json:"timebox_minutes,omitempty"`
	TimeboxDays    int `json:"timebox_days,omitempty"`

	PricingModel string `json:"pricing_model"`
	PricingRange string `json:"pricing_range"`

	Competitors []Competitor `json:"competitors"`
	VoCQuotes   []VoCQuote   `json:"voc_quotes"`
}

// BuildTime returns the candidate's estimated build time as a raw timebox
// number: minutes when present, otherwise days. Zero when ingestion provided
// neither, which scoring treats as the lowest branch.
func (c *Candidate) BuildTime() int {
	if c.TimeboxMinutes > 0 {
		return c.TimeboxMinutes
	}
	return c.TimeboxDays
}

// Competitor is one validation-evidence entry describing an existing
// alternative and the gap the candidate exploits.
type Competitor struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Price string `json:"price"`
	Gap   string `json:"gap"`
}

// VoCQuote is a voice-of-customer evidence entry supporting demand.
type VoCQuote struct {
	URL     string `json:"url"`
	PainTag string `json:"pain_tag"`
	Quote   string `json:"quote,omitempty"`
}

// Track is a coarse grouping label for candidates (e.g. "Chrome Extension").
type Track struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
