package fit

import (
	"github.com/smith505/ideafit/internal/types"
)

// ScoreCandidate computes the fit score for one (candidate, profile) pair by
// summing the six factor predicates in evaluation order. The score lands in
// 0..100 by construction and is a relative ranking signal, not a calibrated
// probability. Reasons are collected in factor order, one per factor that
// scored above its lowest branch, so the list never exceeds six entries.
// Total: malformed candidate fields degrade to low-scoring branches, never an
// error.
func (r *Ranker) ScoreCandidate(c *types.Candidate, p *types.FitProfile) (int, []string) {
	trackName := r.lib.TrackName(c.TrackID)

	score := 0
	var reasons []string
	for _, factor := range factors {
		res := factor(c, trackName, p)
		score += res.Points
		if res.Reason != "" {
			reasons = append(reasons, res.Reason)
		}
	}
	return score, reasons
}
