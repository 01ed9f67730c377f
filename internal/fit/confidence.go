package fit

import (
	"github.com/smith505/ideafit/internal/types"
)

// Gap thresholds between the top two scores.
const (
	highConfidenceGap   = 10
	mediumConfidenceGap = 5
)

// Confidence classifies how decisively the top match beats the runner-up by
// thresholding the score gap. Deterministic and total.
func Confidence(topScore, secondScore int) types.Confidence {
	gap := topScore - secondScore

	switch {
	case gap >= highConfidenceGap:
		return types.Confidence{
			Level:       types.ConfidenceHigh,
			Explanation: "Your top match is well ahead of the alternatives.",
		}
	case gap >= mediumConfidenceGap:
		return types.Confidence{
			Level:       types.ConfidenceMedium,
			Explanation: "Your top match leads, but the runner-up is worth a look.",
		}
	default:
		return types.Confidence{
			Level:       types.ConfidenceLow,
			Explanation: "Several ideas fit you almost equally well.",
		}
	}
}
