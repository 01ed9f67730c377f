package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smith505/ideafit/internal/library"
	"github.com/smith505/ideafit/internal/quiz"
	"github.com/smith505/ideafit/internal/types"
)

func devAnswers() types.QuizAnswers {
	return types.QuizAnswers{
		quiz.KeyTimeWeekly:       "2-5",
		quiz.KeyTechComfort:      "dev",
		quiz.KeySupportTolerance: "low",
		quiz.KeyRevenueGoal:      "side",
		quiz.KeyAudienceAccess:   []any{"developers"},
	}
}

func nonTechAnswers() types.QuizAnswers {
	return types.QuizAnswers{
		quiz.KeyTimeWeekly:       "11-20",
		quiz.KeyTechComfort:      "nocode",
		quiz.KeySupportTolerance: "high",
		quiz.KeyRevenueGoal:      "salary",
		quiz.KeyAudienceAccess:   []any{"smb"},
	}
}

func TestRank_SortedNonIncreasing(t *testing.T) {
	r := NewRanker(newTestLibrary())

	result, err := r.Rank(devAnswers(), nil)
	require.NoError(t, err)

	for i := 1; i < len(result.RankedIdeas); i++ {
		assert.GreaterOrEqual(t, result.RankedIdeas[i-1].Score, result.RankedIdeas[i].Score)
	}
}

func TestRank_WinnerMetadata(t *testing.T) {
	r := NewRanker(newTestLibrary())

	result, err := r.Rank(devAnswers(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.RankedIdeas)

	assert.Equal(t, result.RankedIdeas[0].ID, result.WinnerID)
	assert.Equal(t, result.RankedIdeas[0].Track, result.FitTrack)
	assert.Equal(t, "idea-ext", result.WinnerID)
	assert.Equal(t, "Chrome Extension", result.FitTrack)
}

func TestRank_DefaultLimit(t *testing.T) {
	candidates := make([]types.Candidate, 8)
	for i := range candidates {
		candidates[i] = types.Candidate{
			ID:           string(rune('a' + i)),
			Name:         "Idea",
			TrackID:      "t",
			PricingModel: types.PricingOneTime,
		}
	}
	lib, err := library.New(library.Document{Candidates: candidates})
	require.NoError(t, err)

	result, err := NewRanker(lib).Rank(types.QuizAnswers{}, nil)
	require.NoError(t, err)

	assert.Len(t, result.RankedIdeas, DefaultLimit)
}

func TestRank_TiesKeepLibraryOrder(t *testing.T) {
	// Identical candidates score identically; the stable sort must keep
	// their library order.
	candidates := []types.Candidate{
		{ID: "first", Name: "Idea", TrackID: "t", PricingModel: types.PricingOneTime},
		{ID: "second", Name: "Idea", TrackID: "t", PricingModel: types.PricingOneTime},
		{ID: "third", Name: "Idea", TrackID: "t", PricingModel: types.PricingOneTime},
	}
	lib, err := library.New(library.Document{Candidates: candidates})
	require.NoError(t, err)

	result, err := NewRanker(lib).Rank(types.QuizAnswers{}, nil)
	require.NoError(t, err)

	require.Len(t, result.RankedIdeas, 3)
	assert.Equal(t, "first", result.RankedIdeas[0].ID)
	assert.Equal(t, "second", result.RankedIdeas[1].ID)
	assert.Equal(t, "third", result.RankedIdeas[2].ID)
}

func TestRank_Deterministic(t *testing.T) {
	r := NewRanker(newTestLibrary())

	first, err := r.Rank(devAnswers(), nil)
	require.NoError(t, err)
	second, err := r.Rank(devAnswers(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRank_PersonalizationDifferentiates(t *testing.T) {
	r := NewRanker(newTestLibrary())

	dev, err := r.Rank(devAnswers(), nil)
	require.NoError(t, err)
	nonTech, err := r.Rank(nonTechAnswers(), nil)
	require.NoError(t, err)

	differentWinner := dev.WinnerID != nonTech.WinnerID
	differentScore := dev.RankedIdeas[0].Score != nonTech.RankedIdeas[0].Score
	assert.True(t, differentWinner || differentScore,
		"structurally different profiles must not produce identical top results")
}

func TestRank_LimitOption(t *testing.T) {
	r := NewRanker(newTestLibrary())

	result, err := r.Rank(devAnswers(), &RankOptions{Limit: 2})
	require.NoError(t, err)

	assert.Len(t, result.RankedIdeas, 2)
}

func TestRank_ReasonJoinsFirstTwo(t *testing.T) {
	r := NewRanker(newTestLibrary())

	result, err := r.Rank(devAnswers(), nil)
	require.NoError(t, err)

	winner := result.RankedIdeas[0]
	assert.Contains(t, winner.Reason, ". ")
	assert.Contains(t, winner.Reason, "Quick to build")
}

func TestSummarizeReasons_Fallback(t *testing.T) {
	assert.Equal(t, fallbackReason, summarizeReasons(nil))
	assert.Equal(t, "only one", summarizeReasons([]string{"only one"}))
	assert.Equal(t, "a. b", summarizeReasons([]string{"a", "b", "c"}))
}
