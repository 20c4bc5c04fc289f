package analysis

import (
	"fmt"

	"passwordStrengthBackend/internal/core/domain"
)

// DefaultMinRecommendedLength is the length below which the generator
// suggests a longer password.
const DefaultMinRecommendedLength = 10

const affirmationMessage = "Your password has good complexity!"

// complexityHintBits mirrors the STRONG threshold: anything weaker earns a
// general complexity suggestion.
const complexityHintBits = 60

var patternAdvice = []struct {
	Kind    domain.PatternKind
	Message string
}{
	{domain.PatternSequentialNumeric, "Avoid sequential numbers like 123 or 987"},
	{domain.PatternSequentialAlpha, "Avoid sequential letters like abc or zyx"},
	{domain.PatternRepeatedChar, "Avoid repeating the same character"},
	{domain.PatternCommonSequence, "Avoid common words and keyboard patterns"},
}

// Recommend emits every remediation rule that applies, in fixed order:
// missing character classes, minimum length, one suggestion per distinct
// pattern kind, then a general complexity hint. A password that triggers
// nothing gets the single affirmation, so the list is never empty.
func Recommend(
	cs domain.CharacterSpace,
	length int,
	entropyBits float64,
	findings []domain.PatternFinding,
	minLength int,
) []string {
	if minLength <= 0 {
		minLength = DefaultMinRecommendedLength
	}

	var recommendations []string

	if !cs.HasLower {
		recommendations = append(recommendations, "Add lowercase letters")
	}
	if !cs.HasUpper {
		recommendations = append(recommendations, "Add uppercase letters")
	}
	if !cs.HasDigit {
		recommendations = append(recommendations, "Add numbers")
	}
	if !cs.HasSpecial {
		recommendations = append(recommendations, "Add special characters")
	}

	if length < minLength {
		recommendations = append(recommendations, fmt.Sprintf("Use at least %d characters", minLength))
	}

	present := make(map[domain.PatternKind]bool, len(findings))
	for _, f := range findings {
		present[f.Kind] = true
	}
	for _, advice := range patternAdvice {
		if present[advice.Kind] {
			recommendations = append(recommendations, advice.Message)
		}
	}

	if entropyBits < complexityHintBits {
		recommendations = append(recommendations, "Increase complexity for better security")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, affirmationMessage)
	}

	return recommendations
}
