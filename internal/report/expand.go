// Package report expands a paid report with LLM-generated sections.
//
// The expander sits outside the scoring core: ranking never calls it, the
// server's post-payment path does. The generator is treated as opaque. It
// takes the winning idea plus the profile and returns free-text fields.
package report

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smith505/ideafit/internal/llm"
	"github.com/smith505/ideafit/internal/types"
)

// Expander generates the paid-report sections for a winning idea.
type Expander struct {
	client llm.Client
	log    *zap.Logger
}

// NewExpander creates an Expander over the given LLM client.
func NewExpander(client llm.Client, log *zap.Logger) *Expander {
	return &Expander{client: client, log: log}
}

// Expand produces the three expanded sections for the top-ranked idea. The
// sections are independent, so they are generated concurrently; the first
// provider error cancels the rest.
func (e *Expander) Expand(ctx context.Context, idea types.RankedIdea, profile types.FitProfile) (*types.ReportExpansion, error) {
	exp := &types.ReportExpansion{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, err := e.generate(ctx, mvpScopePrompt, idea, profile)
		if err != nil {
			return fmt.Errorf("failed to generate MVP scope: %w", err)
		}
		exp.MVPScope = text
		return nil
	})
	g.Go(func() error {
		text, err := e.generate(ctx, competitorsPrompt, idea, profile)
		if err != nil {
			return fmt.Errorf("failed to generate competitor breakdown: %w", err)
		}
		exp.Competitors = text
		return nil
	})
	g.Go(func() error {
		text, err := e.generate(ctx, shipPlanPrompt, idea, profile)
		if err != nil {
			return fmt.Errorf("failed to generate ship plan: %w", err)
		}
		exp.ShipPlan = text
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.log.Info("report expansion generated",
		zap.String("idea_id", idea.ID),
		zap.Int("mvp_scope_chars", len(exp.MVPScope)),
	)
	return exp, nil
}

const (
	mvpScopePrompt = `You are advising a first-time founder. Write a concrete MVP scope
for the startup idea below: the smallest sellable version, what is explicitly
cut, and the one metric that proves it works. Plain prose, no headings.`

	competitorsPrompt = `You are advising a first-time founder. Write a short competitor
breakdown for the startup idea below: who the user would be compared against,
what those alternatives charge, and the wedge this idea wins on. Plain prose.`

	shipPlanPrompt = `You are advising a first-time founder. Write a week-by-week ship
plan for the startup idea below, sized to the founder's weekly hours. Plain
prose, at most four weeks.`
)

func (e *Expander) generate(ctx context.Context, prompt string, idea types.RankedIdea, profile types.FitProfile) (string, error) {
	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString("\n\nIdea: ")
	sb.WriteString(idea.Name)
	sb.WriteString("\nTrack: ")
	sb.WriteString(idea.Track)
	sb.WriteString("\nWhy it matched: ")
	sb.WriteString(idea.Reason)
	sb.WriteString(fmt.Sprintf("\nFounder: %s weekly hours, %s technical comfort, %s revenue goal.",
		profile.TimeWeekly, profile.TechComfort, profile.RevenueGoal))

	return e.client.GenerateContent(ctx, sb.String(), llm.TierStandard)
}
