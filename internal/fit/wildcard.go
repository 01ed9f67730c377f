package fit

import (
	"github.com/smith505/ideafit/internal/types"
)

// Wildcard returns the first entry in the given rank-ordered slice whose track
// differs from topTrack, or nil when every entry shares it. Callers pass the
// ranked tail after the top two, so the pick is the highest-ranked cross-track
// idea by construction.
func Wildcard(afterTop2 []types.RankedIdea, topTrack string) *types.RankedIdea {
	for i := range afterTop2 {
		if afterTop2[i].Track != topTrack {
			return &afterTop2[i]
		}
	}
	return nil
}
