package fit

import (
	"sort"
	"strings"

	"github.com/smith505/ideafit/internal/library"
	"github.com/smith505/ideafit/internal/quiz"
	"github.com/smith505/ideafit/internal/types"
)

// DefaultLimit is the number of ranked ideas returned when no limit is set.
const DefaultLimit = 5

// fallbackReason is used when every factor landed in an unreasoned branch.
const fallbackReason = "Solid overall fit for how you want to build"

// Ranker scores a candidate library against quiz answers. The library is an
// injected read-only dependency, so tests can rank synthetic libraries.
// A Ranker is stateless beyond the library reference and safe for concurrent
// use.
type Ranker struct {
	lib *library.Library
}

// NewRanker creates a Ranker over the given library.
func NewRanker(lib *library.Library) *Ranker {
	return &Ranker{lib: lib}
}

// RankOptions controls ranking output.
type RankOptions struct {
	// Limit truncates the ranked list. Zero means DefaultLimit.
	Limit int
}

// Rank builds a profile from the answers, scores every candidate, and returns
// the top ideas sorted by descending score. The sort is stable: ties keep the
// library's relative order, so identical inputs always produce identical
// output. Returns library.ErrEmptyLibrary when there is nothing to rank.
func (r *Ranker) Rank(answers types.QuizAnswers, opts *RankOptions) (*types.RankResult, error) {
	if r.lib.Len() == 0 {
		return nil, library.ErrEmptyLibrary
	}

	limit := DefaultLimit
	if opts != nil && opts.Limit > 0 {
		limit = opts.Limit
	}

	profile := quiz.BuildFitProfile(answers)

	candidates := r.lib.Candidates()
	ranked := make([]types.RankedIdea, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		score, reasons := r.ScoreCandidate(c, &profile)
		ranked = append(ranked, types.RankedIdea{
			ID:     c.ID,
			Name:   c.Name,
			Score:  score,
			Reason: summarizeReasons(reasons),
			Track:  r.lib.TrackName(c.TrackID),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return &types.RankResult{
		Profile:     profile,
		RankedIdeas: ranked,
		FitTrack:    ranked[0].Track,
		WinnerID:    ranked[0].ID,
	}, nil
}

// summarizeReasons joins the first two factor reasons into the display reason.
func summarizeReasons(reasons []string) string {
	if len(reasons) == 0 {
		return fallbackReason
	}
	if len(reasons) > 2 {
		reasons = reasons[:2]
	}
	return strings.Join(reasons, ". ")
}
