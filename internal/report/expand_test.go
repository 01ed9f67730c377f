package report

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smith505/ideafit/internal/llm"
	"github.com/smith505/ideafit/internal/types"
)

// fakeClient returns canned text keyed on a prompt fragment.
type fakeClient struct {
	mu      sync.Mutex
	prompts []string
	err     error
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	switch {
	case strings.Contains(prompt, "MVP scope"):
		return "mvp text", nil
	case strings.Contains(prompt, "competitor"):
		return "competitor text", nil
	default:
		return "ship plan text", nil
	}
}

func (f *fakeClient) Close() error { return nil }

func testIdea() types.RankedIdea {
	return types.RankedIdea{
		ID:     "idea-ext",
		Name:   "Screenshot Annotator",
		Score:  95,
		Reason: "Quick to build with the few hours you have each week",
		Track:  "Chrome Extension",
	}
}

func testProfile() types.FitProfile {
	return types.FitProfile{
		TimeWeekly:  types.TimeWeekly2to5,
		TechComfort: types.TechComfortDev,
		RevenueGoal: types.RevenueSide,
	}
}

func TestExpand_AllSections(t *testing.T) {
	client := &fakeClient{}
	exp := NewExpander(client, zap.NewNop())

	result, err := exp.Expand(context.Background(), testIdea(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, "mvp text", result.MVPScope)
	assert.Equal(t, "competitor text", result.Competitors)
	assert.Equal(t, "ship plan text", result.ShipPlan)
	assert.Len(t, client.prompts, 3)
}

func TestExpand_PromptCarriesIdeaAndProfile(t *testing.T) {
	client := &fakeClient{}
	exp := NewExpander(client, zap.NewNop())

	_, err := exp.Expand(context.Background(), testIdea(), testProfile())
	require.NoError(t, err)

	for _, prompt := range client.prompts {
		assert.Contains(t, prompt, "Screenshot Annotator")
		assert.Contains(t, prompt, "Chrome Extension")
		assert.Contains(t, prompt, types.TimeWeekly2to5)
	}
}

func TestExpand_ProviderError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	exp := NewExpander(client, zap.NewNop())

	result, err := exp.Expand(context.Background(), testIdea(), testProfile())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "quota exceeded")
}
