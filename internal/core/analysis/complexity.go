package analysis

import "passwordStrengthBackend/internal/core/domain"

// complexityThresholds maps entropy bits to a strength level. Checked top
// down; boundaries are inclusive on the lower bound, so exactly 28 bits is
// WEAK, not VERY_WEAK.
var complexityThresholds = []struct {
	MinBits float64
	Level   domain.StrengthLevel
}{
	{128, domain.StrengthVeryStrong},
	{60, domain.StrengthStrong},
	{36, domain.StrengthMedium},
	{28, domain.StrengthWeak},
	{0, domain.StrengthVeryWeak},
}

func ClassifyComplexity(entropyBits float64) domain.StrengthLevel {
	for _, t := range complexityThresholds {
		if entropyBits >= t.MinBits {
			return t.Level
		}
	}
	return domain.StrengthVeryWeak
}
