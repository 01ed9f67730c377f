// Package mailer sends transactional report emails.
package mailer

import (
	"context"
	"fmt"
)

// Mailer delivers report-ready notifications. The server depends on this
// interface so tests and local runs can use Noop.
type Mailer interface {
	SendReportReady(ctx context.Context, to, reportURL string) error
}

// Noop is a Mailer that silently drops every message. Used in tests and when
// no email provider is configured.
type Noop struct{}

// SendReportReady implements Mailer.
func (Noop) SendReportReady(_ context.Context, _, _ string) error {
	return nil
}

const reportReadySubject = "Your full idea report is ready"

// reportReadyBody renders the plain-text body of the report-ready email.
func reportReadyBody(reportURL string) string {
	return fmt.Sprintf(`Your full report is unlocked.

Read it here: %s

This link is tied to your purchase and keeps working, so come back to it any time.
`, reportURL)
}
