package domain

import (
	"fmt"
	"math/big"
	"strings"
)

type CharacterSpace struct {
	HasLower   bool `json:"hasLower"`
	HasUpper   bool `json:"hasUpper"`
	HasDigit   bool `json:"hasDigit"`
	HasSpecial bool `json:"hasSpecial"`
	HasSpace   bool `json:"hasSpace"`
	TotalSpace int  `json:"totalSpace"`
}

type PatternFinding struct {
	Kind    PatternKind `json:"kind"`
	Start   int         `json:"start"`
	End     int         `json:"end"`
	Penalty float64     `json:"penalty"`
}

type AttackProfile struct {
	Name           string
	Speed          string
	AttemptsPerSec float64
}

type CrackTimeEstimate struct {
	Profile string  `json:"profile"`
	Speed   string  `json:"speed"`
	Seconds float64 `json:"-"`
	Display string  `json:"estimate"`
}

type AnalysisResult struct {
	Length          int                 `json:"length"`
	CharacterSpace  CharacterSpace      `json:"characterSpace"`
	EntropyBits     float64             `json:"entropyBits"`
	Combinations    Combinations        `json:"combinations"`
	Complexity      StrengthLevel       `json:"complexity"`
	Findings        []PatternFinding    `json:"patternFindings"`
	BruteForceTimes []CrackTimeEstimate `json:"bruteForceTimes"`
	Recommendations []string            `json:"recommendations"`
}

type DemoAnalysis struct {
	Password    string         `json:"password"`
	Description string         `json:"description"`
	Analysis    AnalysisResult `json:"analysis"`
}

// maxSafeInteger is the largest integer a float64 (and therefore most JSON
// consumers) can represent exactly.
const maxSafeInteger = 1<<53 - 1

// Combinations holds the exact keyspace count. Values past maxSafeInteger are
// serialized as decimal strings so clients never see a rounded number.
type Combinations struct {
	*big.Int
}

func NewCombinations(v *big.Int) Combinations {
	return Combinations{v}
}

func (c Combinations) MarshalJSON() ([]byte, error) {
	if c.Int == nil {
		return []byte("0"), nil
	}
	if c.IsInt64() && c.Int64() <= maxSafeInteger {
		return []byte(c.String()), nil
	}
	return []byte(`"` + c.String() + `"`), nil
}

func (c *Combinations) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid combinations value %q", s)
	}
	c.Int = v
	return nil
}
