package analysis

import (
	"sort"
	"strings"
	"unicode"

	"passwordStrengthBackend/internal/core/domain"
)

// Weights assigns the entropy penalty (in bits) charged per finding of each
// pattern kind.
type Weights struct {
	SequentialNumeric float64
	SequentialAlpha   float64
	RepeatedChar      float64
	CommonSequence    float64
}

var DefaultWeights = Weights{
	SequentialNumeric: 10,
	SequentialAlpha:   10,
	RepeatedChar:      15,
	CommonSequence:    20,
}

// CommonSequences is the deny-list checked as case-insensitive substrings.
var CommonSequences = []string{
	"password",
	"qwerty",
	"123456",
	"letmein",
	"welcome",
	"admin",
	"monkey",
	"dragon",
	"iloveyou",
	"football",
	"trustno1",
}

// minRunLength is the shortest run of sequential or repeated characters that
// counts as a finding.
const minRunLength = 3

// DetectPatterns scans the password with the default weights.
func DetectPatterns(password string) ([]domain.PatternFinding, float64) {
	return DetectPatternsWith(password, DefaultWeights)
}

// DetectPatternsWith runs the four detector passes in fixed order: sequential
// numeric, sequential alpha, repeated character, common sequence. Findings
// within a pass are ordered left to right; each maximal run is counted once.
// The returned total is the sum of all finding penalties, uncapped — the
// entropy stage clamps at zero.
func DetectPatternsWith(password string, w Weights) ([]domain.PatternFinding, float64) {
	runes := []rune(password)

	var findings []domain.PatternFinding
	findings = append(findings, detectSequentialRuns(runes, isDigitRune, domain.PatternSequentialNumeric, w.SequentialNumeric)...)
	findings = append(findings, detectSequentialRuns(lowered(runes), isLetterRune, domain.PatternSequentialAlpha, w.SequentialAlpha)...)
	findings = append(findings, detectRepeatedRuns(runes, w.RepeatedChar)...)
	findings = append(findings, detectCommonSequences(runes, w.CommonSequence)...)

	var total float64
	for _, f := range findings {
		total += f.Penalty
	}
	return findings, total
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetterRune(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func lowered(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// detectSequentialRuns finds maximal runs of length >= minRunLength whose
// members ascend or descend by one code point, e.g. "123", "987", "abc",
// "zyx". Ascending and descending scans are merged and sorted by position so
// the pass reports left to right.
func detectSequentialRuns(runes []rune, member func(rune) bool, kind domain.PatternKind, weight float64) []domain.PatternFinding {
	runs := append(maximalRuns(runes, member, 1), maximalRuns(runes, member, -1)...)
	sort.Slice(runs, func(i, j int) bool {
		if runs[i][0] != runs[j][0] {
			return runs[i][0] < runs[j][0]
		}
		return runs[i][1] < runs[j][1]
	})

	findings := make([]domain.PatternFinding, 0, len(runs))
	for _, run := range runs {
		findings = append(findings, domain.PatternFinding{
			Kind:    kind,
			Start:   run[0],
			End:     run[1],
			Penalty: weight,
		})
	}
	return findings
}

// maximalRuns returns [start, end) spans of maximal step-wise runs over the
// member set. A run that merely shrinks below minRunLength at a break is
// discarded, not re-counted per sliding window.
func maximalRuns(runes []rune, member func(rune) bool, step int) [][2]int {
	var runs [][2]int
	start := -1

	flush := func(end int) {
		if start >= 0 && end-start >= minRunLength {
			runs = append(runs, [2]int{start, end})
		}
	}

	for i, r := range runes {
		if !member(r) {
			flush(i)
			start = -1
			continue
		}
		if start >= 0 && int(r)-int(runes[i-1]) == step {
			continue
		}
		flush(i)
		start = i
	}
	flush(len(runes))

	return runs
}

func detectRepeatedRuns(runes []rune, weight float64) []domain.PatternFinding {
	var findings []domain.PatternFinding

	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= minRunLength {
			findings = append(findings, domain.PatternFinding{
				Kind:    domain.PatternRepeatedChar,
				Start:   i,
				End:     j,
				Penalty: weight,
			})
		}
		i = j
	}

	return findings
}

func detectCommonSequences(runes []rune, weight float64) []domain.PatternFinding {
	haystack := lowered(runes)

	var findings []domain.PatternFinding
	for _, seq := range CommonSequences {
		needle := []rune(strings.ToLower(seq))
		for _, start := range runeIndexes(haystack, needle) {
			findings = append(findings, domain.PatternFinding{
				Kind:    domain.PatternCommonSequence,
				Start:   start,
				End:     start + len(needle),
				Penalty: weight,
			})
		}
	}
	return findings
}

// runeIndexes returns the start positions of all non-overlapping occurrences
// of needle in haystack, in rune offsets.
func runeIndexes(haystack, needle []rune) []int {
	var indexes []int
	if len(needle) == 0 {
		return indexes
	}

	for i := 0; i+len(needle) <= len(haystack); {
		matched := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				matched = false
				break
			}
		}
		if matched {
			indexes = append(indexes, i)
			i += len(needle)
		} else {
			i++
		}
	}
	return indexes
}
