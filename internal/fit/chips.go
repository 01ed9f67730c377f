package fit

import (
	"github.com/smith505/ideafit/internal/types"
)

// MatchChips derives the UI explanation tags for one candidate against a
// profile. It runs the same factor predicates as the scorer, so a chip can
// never claim an alignment the score didn't credit. Chips appear in factor
// evaluation order; an unknown candidate id yields nil.
func (r *Ranker) MatchChips(p *types.FitProfile, candidateID string) []types.MatchChip {
	c := r.lib.ByID(candidateID)
	if c == nil {
		return nil
	}

	trackName := r.lib.TrackName(c.TrackID)

	var chips []types.MatchChip
	for _, factor := range factors {
		res := factor(c, trackName, p)
		chips = append(chips, res.Chips...)
	}
	return chips
}
