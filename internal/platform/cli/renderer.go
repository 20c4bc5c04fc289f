package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"passwordStrengthBackend/internal/core/domain"
)

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorWhite   = "\033[37m"
)

var complexityColors = map[domain.StrengthLevel]string{
	domain.StrengthVeryWeak:   colorRed,
	domain.StrengthWeak:       colorRed,
	domain.StrengthMedium:     colorYellow,
	domain.StrengthStrong:     colorGreen,
	domain.StrengthVeryStrong: colorGreen,
}

type Renderer struct {
	out      io.Writer
	useColor bool
}

func NewRenderer(out io.Writer, useColor bool) *Renderer {
	return &Renderer{out: out, useColor: useColor}
}

func (r *Renderer) paint(color, text string) string {
	if !r.useColor {
		return text
	}
	return color + text + colorReset
}

func (r *Renderer) RenderAnalysis(result *domain.AnalysisResult) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.paint(colorCyan, rule))
	fmt.Fprintln(r.out, r.paint(colorCyan, "              PASSWORD STRENGTH ANALYSIS"))
	fmt.Fprintln(r.out, r.paint(colorCyan, rule))

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.paint(colorWhite, "PASSWORD PROPERTIES:"))
	fmt.Fprintf(r.out, "  Length:          %d characters\n", result.Length)
	fmt.Fprintf(r.out, "  Character space: %d possible characters\n", result.CharacterSpace.TotalSpace)
	fmt.Fprintf(r.out, "  Entropy:         %.2f bits\n", result.EntropyBits)
	fmt.Fprintf(r.out, "  Complexity:      %s\n",
		r.paint(complexityColors[result.Complexity], result.Complexity.Display()))
	fmt.Fprintf(r.out, "  Combinations:    %s\n", result.Combinations.String())

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.paint(colorWhite, "BRUTE FORCE TIME ESTIMATES:"))
	for _, est := range result.BruteForceTimes {
		label := fmt.Sprintf("%s (%s)", est.Profile, est.Speed)
		fmt.Fprintf(r.out, "  %-25s: %s\n", label, r.paint(r.timeColor(est.Seconds), est.Display))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.paint(colorWhite, "RECOMMENDATIONS:"))
	for _, rec := range result.Recommendations {
		marker, color := "!", colorYellow
		if strings.Contains(rec, "good complexity") {
			marker, color = "+", colorGreen
		}
		fmt.Fprintf(r.out, "  %s %s\n", marker, r.paint(color, rec))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.paint(colorCyan, rule))
}

func (r *Renderer) RenderDemo(demos []domain.DemoAnalysis, showPassword bool) {
	fmt.Fprintln(r.out, r.paint(colorCyan, "DEMO - Different Password Types"))

	for _, demo := range demos {
		label := demo.Description
		if showPassword {
			label = fmt.Sprintf("%s: '%s'", demo.Description, demo.Password)
		}
		fmt.Fprintf(r.out, "\n%s\n", r.paint(colorMagenta, label))
		r.RenderAnalysis(&demo.Analysis)
	}
}

func (r *Renderer) timeColor(seconds float64) string {
	switch {
	case math.IsInf(seconds, 1) || seconds > 365*24*3600:
		return colorGreen
	case seconds > 24*3600:
		return colorYellow
	default:
		return colorRed
	}
}
