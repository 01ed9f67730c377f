package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smith505/ideafit/internal/types"
)

// CreateReport persists a new preview report: the raw answers plus the ranked
// result snapshot, both as JSONB. Returns the new report id.
func (db *DB) CreateReport(ctx context.Context, email string, answers types.QuizAnswers, result *types.RankResult) (uuid.UUID, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal rank result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO reports (email, status, answers, result)
		 VALUES ($1, 'preview', $2, $3)
		 RETURNING id`,
		email, answersJSON, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create report: %w", err)
	}
	return id, nil
}

// GetReport retrieves a report by id. Returns (nil, nil) when not found.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*types.Report, error) {
	var (
		report        types.Report
		answersJSON   []byte
		resultJSON    []byte
		expansionJSON []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT id, COALESCE(email, ''), status, answers, result, expansion, created_at, paid_at
		 FROM reports WHERE id = $1`,
		id,
	).Scan(&report.ID, &report.Email, &report.Status, &answersJSON, &resultJSON, &expansionJSON, &report.CreatedAt, &report.PaidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if err := json.Unmarshal(answersJSON, &report.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report answers: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &report.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report result: %w", err)
	}
	if len(expansionJSON) > 0 {
		var exp types.ReportExpansion
		if err := json.Unmarshal(expansionJSON, &exp); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report expansion: %w", err)
		}
		report.Expansion = &exp
	}

	return &report, nil
}

// MarkReportPaid flips a report to paid status and records the payer email.
func (db *DB) MarkReportPaid(ctx context.Context, id uuid.UUID, email string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE reports SET status = 'paid', email = $1, paid_at = NOW() WHERE id = $2`,
		email, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark report paid: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("report not found: %s", id)
	}
	return nil
}

// SaveExpansion stores the generated expansion sections on a report.
func (db *DB) SaveExpansion(ctx context.Context, id uuid.UUID, expansion *types.ReportExpansion) error {
	expansionJSON, err := json.Marshal(expansion)
	if err != nil {
		return fmt.Errorf("failed to marshal expansion: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE reports SET expansion = $1 WHERE id = $2`,
		expansionJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to save expansion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("report not found: %s", id)
	}
	return nil
}

// ReportSummary is a lightweight view of a report for admin listings.
type ReportSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	WinnerID  string    `json:"winner_id"`
	FitTrack  string    `json:"fit_track"`
	CreatedAt string    `json:"created_at"`
}

// ListReports retrieves recent reports, newest first.
func (db *DB) ListReports(ctx context.Context, limit int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, COALESCE(email, ''), status,
		        result->>'winner_id', result->>'fit_track', created_at::text
		 FROM reports ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []ReportSummary
	for rows.Next() {
		var r ReportSummary
		if err := rows.Scan(&r.ID, &r.Email, &r.Status, &r.WinnerID, &r.FitTrack, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}
