package analysis

import (
	"testing"

	"passwordStrengthBackend/internal/core/domain"
)

func TestClassifyComplexity(t *testing.T) {
	tests := []struct {
		bits float64
		want domain.StrengthLevel
	}{
		{0, domain.StrengthVeryWeak},
		{27.99, domain.StrengthVeryWeak},
		{28, domain.StrengthWeak},
		{35.99, domain.StrengthWeak},
		{36, domain.StrengthMedium},
		{59.99, domain.StrengthMedium},
		{60, domain.StrengthStrong},
		{127.99, domain.StrengthStrong},
		{128, domain.StrengthVeryStrong},
		{500, domain.StrengthVeryStrong},
	}

	for _, tt := range tests {
		if got := ClassifyComplexity(tt.bits); got != tt.want {
			t.Errorf("ClassifyComplexity(%v) = %s, want %s", tt.bits, got, tt.want)
		}
	}
}
