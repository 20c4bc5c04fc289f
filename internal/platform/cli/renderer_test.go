package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"passwordStrengthBackend/internal/core/service"
	"passwordStrengthBackend/internal/pkg/metrics"
)

func TestRenderAnalysis_PlainOutput(t *testing.T) {
	svc := service.NewAnalyzerService(service.Settings{}, metrics.NewCollector(), metrics.NewNopReporter())
	result, err := svc.Analyze(context.Background(), "Tr0ub4dor&3")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	NewRenderer(&buf, false).RenderAnalysis(result)
	out := buf.String()

	for _, want := range []string{
		"PASSWORD PROPERTIES:",
		"Length:          11 characters",
		"Character space: 90 possible characters",
		"BRUTE FORCE TIME ESTIMATES:",
		"Basic CPU (1M/s)",
		"Quantum (1P/s)",
		"RECOMMENDATIONS:",
		"good complexity",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "\033[") {
		t.Error("plain output contains ANSI escape codes")
	}
	if strings.Contains(out, "Tr0ub4dor&3") {
		t.Error("output leaks the password value")
	}
}

func TestRenderDemo_ShowPassword(t *testing.T) {
	svc := service.NewAnalyzerService(service.Settings{}, metrics.NewCollector(), metrics.NewNopReporter())
	demos, err := svc.Demo(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	var hidden bytes.Buffer
	NewRenderer(&hidden, false).RenderDemo(demos, false)
	if strings.Contains(hidden.String(), "'123456'") {
		t.Error("demo output shows passwords without --show-password")
	}

	var shown bytes.Buffer
	NewRenderer(&shown, false).RenderDemo(demos, true)
	if !strings.Contains(shown.String(), "'123456'") {
		t.Error("demo output missing password with --show-password")
	}
}
