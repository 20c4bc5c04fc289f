package analysis

import (
	"testing"

	"passwordStrengthBackend/internal/core/domain"
)

func findingSpans(findings []domain.PatternFinding, kind domain.PatternKind) [][2]int {
	var spans [][2]int
	for _, f := range findings {
		if f.Kind == kind {
			spans = append(spans, [2]int{f.Start, f.End})
		}
	}
	return spans
}

func TestDetectPatterns_SequentialNumeric(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     [][2]int
	}{
		{"Ascending triple", "123", [][2]int{{0, 3}}},
		{"Descending triple", "987", [][2]int{{0, 3}}},
		{"Maximal run counted once", "12345", [][2]int{{0, 5}}},
		{"Two distinct runs", "123a987", [][2]int{{0, 3}, {4, 7}}},
		{"Peak yields both directions", "12321", [][2]int{{0, 3}, {2, 5}}},
		{"Pair too short", "12", nil},
		{"Non-consecutive digits", "1357", nil},
		{"Run inside letters", "pw1234x", [][2]int{{2, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, _ := DetectPatterns(tt.password)
			got := findingSpans(findings, domain.PatternSequentialNumeric)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d numeric findings %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("finding %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectPatterns_SequentialAlpha(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     [][2]int
	}{
		{"Ascending lowercase", "xabcx", [][2]int{{1, 4}}},
		{"Descending uppercase", "ZYX", [][2]int{{0, 3}}},
		{"Mixed case run", "aBc", [][2]int{{0, 3}}},
		{"Non-consecutive letters", "acegi", nil},
		{"Maximal run counted once", "defgh", [][2]int{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, _ := DetectPatterns(tt.password)
			got := findingSpans(findings, domain.PatternSequentialAlpha)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d alpha findings %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("finding %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectPatterns_RepeatedChar(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     [][2]int
	}{
		{"Triple", "aaa", [][2]int{{0, 3}}},
		{"Run of four counted once", "aaaa", [][2]int{{0, 4}}},
		{"Pair too short", "aabb", nil},
		{"Two separate runs", "aaabxxx", [][2]int{{0, 3}, {4, 7}}},
		{"Repeated digits", "x111y", [][2]int{{1, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, _ := DetectPatterns(tt.password)
			got := findingSpans(findings, domain.PatternRepeatedChar)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d repeated findings %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("finding %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectPatterns_CommonSequence(t *testing.T) {
	tests := []struct {
		name     string
		password string
		count    int
	}{
		{"Embedded common word", "mypassword1", 1},
		{"Case-insensitive", "QwErTy!", 1},
		{"Two occurrences", "passwordpassword", 2},
		{"Clean input", "Tr0ub4dor&3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, _ := DetectPatterns(tt.password)
			got := findingSpans(findings, domain.PatternCommonSequence)
			if len(got) != tt.count {
				t.Errorf("got %d common-sequence findings %v, want %d", len(got), got, tt.count)
			}
		})
	}
}

func TestDetectPatterns_DetectionOrder(t *testing.T) {
	// Numeric findings report before alpha findings even when the alpha run
	// appears first in the password.
	findings, _ := DetectPatterns("abc123")

	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2", len(findings))
	}
	if findings[0].Kind != domain.PatternSequentialNumeric {
		t.Errorf("first finding kind = %s, want %s", findings[0].Kind, domain.PatternSequentialNumeric)
	}
	if findings[1].Kind != domain.PatternSequentialAlpha {
		t.Errorf("second finding kind = %s, want %s", findings[1].Kind, domain.PatternSequentialAlpha)
	}
}

func TestDetectPatterns_PenaltyTotals(t *testing.T) {
	tests := []struct {
		password string
		want     float64
	}{
		{"abc123", DefaultWeights.SequentialNumeric + DefaultWeights.SequentialAlpha},
		{"aaaa", DefaultWeights.RepeatedChar},
		{"123456", DefaultWeights.SequentialNumeric + DefaultWeights.CommonSequence},
		{"Tr0ub4dor&3", 0},
	}

	for _, tt := range tests {
		_, total := DetectPatterns(tt.password)
		if total != tt.want {
			t.Errorf("DetectPatterns(%q) total penalty = %v, want %v", tt.password, total, tt.want)
		}
	}
}

func TestDetectPatterns_Deterministic(t *testing.T) {
	first, firstTotal := DetectPatterns("aaa123qwerty")
	second, secondTotal := DetectPatterns("aaa123qwerty")

	if firstTotal != secondTotal || len(first) != len(second) {
		t.Fatalf("detection is not deterministic: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("finding %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
