package analysis

import (
	"strings"

	"passwordStrengthBackend/internal/core/domain"
)

// ClassifyCharacterSpace determines which of the five character classes appear
// in the password and sums their alphabet sizes. Characters outside every
// class count toward length elsewhere but contribute nothing here, so the
// search-space assumption never exceeds the defined classes.
func ClassifyCharacterSpace(password string) domain.CharacterSpace {
	var cs domain.CharacterSpace

	for _, r := range password {
		switch {
		case strings.ContainsRune(domain.CharsetLower, r):
			cs.HasLower = true
		case strings.ContainsRune(domain.CharsetUpper, r):
			cs.HasUpper = true
		case strings.ContainsRune(domain.CharsetDigits, r):
			cs.HasDigit = true
		case strings.ContainsRune(domain.CharsetSpecial, r):
			cs.HasSpecial = true
		case strings.ContainsRune(domain.CharsetSpace, r):
			cs.HasSpace = true
		}
	}

	if cs.HasLower {
		cs.TotalSpace += len(domain.CharsetLower)
	}
	if cs.HasUpper {
		cs.TotalSpace += len(domain.CharsetUpper)
	}
	if cs.HasDigit {
		cs.TotalSpace += len(domain.CharsetDigits)
	}
	if cs.HasSpecial {
		cs.TotalSpace += len(domain.CharsetSpecial)
	}
	if cs.HasSpace {
		cs.TotalSpace += len(domain.CharsetSpace)
	}

	return cs
}
