package domain

type StrengthLevel string
type PatternKind string
type CharClass string

const (
	// Password strength levels
	StrengthVeryWeak   StrengthLevel = "VERY_WEAK"
	StrengthWeak       StrengthLevel = "WEAK"
	StrengthMedium     StrengthLevel = "MEDIUM"
	StrengthStrong     StrengthLevel = "STRONG"
	StrengthVeryStrong StrengthLevel = "VERY_STRONG"

	// Weak pattern kinds
	PatternSequentialNumeric PatternKind = "SEQUENTIAL_NUMERIC"
	PatternSequentialAlpha   PatternKind = "SEQUENTIAL_ALPHA"
	PatternRepeatedChar      PatternKind = "REPEATED_CHAR"
	PatternCommonSequence    PatternKind = "COMMON_SEQUENCE"

	// Character classes
	ClassLower   CharClass = "LOWERCASE"
	ClassUpper   CharClass = "UPPERCASE"
	ClassDigit   CharClass = "DIGIT"
	ClassSpecial CharClass = "SPECIAL"
	ClassSpace   CharClass = "SPACE"
)

var (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSpecial = "!@#$%^&*()_+-=[]{}|;:,.<>?/~"
	CharsetSpace   = " "
)

// Display returns the human-readable form of a strength level.
func (s StrengthLevel) Display() string {
	switch s {
	case StrengthVeryWeak:
		return "Very Weak"
	case StrengthWeak:
		return "Weak"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very Strong"
	}
	return string(s)
}

type AnalysisError string

const (
	ErrPasswordTooLong AnalysisError = "PASSWORD_TOO_LONG"
	ErrMissingPassword AnalysisError = "MISSING_PASSWORD"
)

func (e AnalysisError) Error() string {
	return string(e)
}
