package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smith505/ideafit/internal/types"
)

func TestConfidence_High(t *testing.T) {
	conf := Confidence(90, 75)

	assert.Equal(t, types.ConfidenceHigh, conf.Level)
	assert.NotEmpty(t, conf.Explanation)
}

func TestConfidence_Medium(t *testing.T) {
	conf := Confidence(85, 78)

	assert.Equal(t, types.ConfidenceMedium, conf.Level)
}

func TestConfidence_Low(t *testing.T) {
	conf := Confidence(82, 80)

	assert.Equal(t, types.ConfidenceLow, conf.Level)
}

func TestConfidence_Boundaries(t *testing.T) {
	assert.Equal(t, types.ConfidenceHigh, Confidence(60, 50).Level)
	assert.Equal(t, types.ConfidenceMedium, Confidence(59, 50).Level)
	assert.Equal(t, types.ConfidenceMedium, Confidence(55, 50).Level)
	assert.Equal(t, types.ConfidenceLow, Confidence(54, 50).Level)
	assert.Equal(t, types.ConfidenceLow, Confidence(50, 50).Level)
}

func TestConfidence_NegativeGapIsLow(t *testing.T) {
	assert.Equal(t, types.ConfidenceLow, Confidence(40, 60).Level)
}
