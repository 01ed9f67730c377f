// Package types provides type definitions for structured data used throughout the ideafit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses
const (
	ReportStatusPreview = "preview"
	ReportStatusPaid    = "paid"
)

// Report is a persisted ranking snapshot a user can return to and unlock.
type Report struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email,omitempty"`
	Status    string           `json:"status"`
	Answers   QuizAnswers      `json:"answers"`
	Result    RankResult       `json:"result"`
	Expansion *ReportExpansion `json:"expansion,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	PaidAt    *time.Time       `json:"paid_at,omitempty"`
}

// ReportExpansion holds the free-text sections produced by the LLM-backed
// generator for a paid report. The scoring core never populates this.
type ReportExpansion struct {
	MVPScope    string `json:"mvp_scope"`
	Competitors string `json:"competitors"`
	ShipPlan    string `json:"ship_plan"`
}
