package service

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"passwordStrengthBackend/internal/core/analysis"
	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/pkg/concurrency"
	"passwordStrengthBackend/internal/pkg/metrics"
	"passwordStrengthBackend/internal/port"
)

const (
	DefaultMaxPasswordLength = 256
	BatchWorkers             = 4
)

// Settings carries the configurable analysis constants. Zero values fall back
// to the package defaults.
type Settings struct {
	MaxPasswordLength    int
	MinRecommendedLength int
	Weights              analysis.Weights
}

type AnalyzerService struct {
	maxLength      int
	minRecommended int
	weights        analysis.Weights
	collector      *metrics.Collector
	reporter       *metrics.Reporter
}

// demoPasswords is the fixed example set served by Demo, in rendering order.
var demoPasswords = []struct {
	Password    string
	Description string
}{
	{"123456", "Very weak password"},
	{"password", "Common word"},
	{"Password123", "Basic complexity"},
	{"MyS3cur3P@ssw0rd!", "Strong password"},
	{"correct horse battery staple", "Passphrase"},
}

func NewAnalyzerService(settings Settings, collector *metrics.Collector, reporter *metrics.Reporter) port.AnalyzerService {
	if settings.MaxPasswordLength <= 0 {
		settings.MaxPasswordLength = DefaultMaxPasswordLength
	}
	if settings.MinRecommendedLength <= 0 {
		settings.MinRecommendedLength = analysis.DefaultMinRecommendedLength
	}
	if settings.Weights == (analysis.Weights{}) {
		settings.Weights = analysis.DefaultWeights
	}
	if collector == nil {
		collector = metrics.NewCollector()
	}
	if reporter == nil {
		reporter = metrics.NewNopReporter()
	}

	return &AnalyzerService{
		maxLength:      settings.MaxPasswordLength,
		minRecommended: settings.MinRecommendedLength,
		weights:        settings.Weights,
		collector:      collector,
		reporter:       reporter,
	}
}

// Analyze runs the full pipeline over one password. The empty string is a
// defined degenerate input, not an error; input past the length guard is
// rejected before any computation. The password value itself is never logged.
func (s *AnalyzerService) Analyze(ctx context.Context, password string) (*domain.AnalysisResult, error) {
	length := utf8.RuneCountInString(password)
	if length > s.maxLength {
		return nil, domain.ErrPasswordTooLong
	}

	var result *domain.AnalysisResult
	perf := metrics.CapturePerformance(func() {
		result = s.analyze(password, length)
	})

	s.collector.RecordAnalysis(perf.Duration)
	s.reporter.Record("password analyzed",
		zap.Int("length", length),
		zap.String("complexity", string(result.Complexity)),
		zap.Duration("duration", perf.Duration),
	)

	return result, nil
}

func (s *AnalyzerService) analyze(password string, length int) *domain.AnalysisResult {
	space := analysis.ClassifyCharacterSpace(password)
	findings, penalty := analysis.DetectPatternsWith(password, s.weights)
	entropyBits := analysis.EntropyBits(length, space.TotalSpace, penalty)
	combinations := analysis.Combinations(space.TotalSpace, length)
	complexity := analysis.ClassifyComplexity(entropyBits)

	return &domain.AnalysisResult{
		Length:          length,
		CharacterSpace:  space,
		EntropyBits:     entropyBits,
		Combinations:    domain.NewCombinations(combinations),
		Complexity:      complexity,
		Findings:        findings,
		BruteForceTimes: analysis.EstimateCrackTimes(combinations),
		Recommendations: analysis.Recommend(space, length, entropyBits, findings, s.minRecommended),
	}
}

// AnalyzeBatch fans the passwords out over the worker pool and returns
// results in input order. The first task error aborts the batch.
func (s *AnalyzerService) AnalyzeBatch(ctx context.Context, passwords []string) ([]domain.AnalysisResult, error) {
	if len(passwords) == 0 {
		return nil, nil
	}

	workers := BatchWorkers
	if workers > len(passwords) {
		workers = len(passwords)
	}

	pool := concurrency.NewWorkerPool(workers, len(passwords))
	pool.Start(ctx)

	for i, password := range passwords {
		password := password
		pool.Submit(concurrency.Task{
			Index: i,
			Run: func() (*domain.AnalysisResult, error) {
				return s.Analyze(ctx, password)
			},
		})
	}
	pool.Stop()

	results := make([]domain.AnalysisResult, len(passwords))
	for r := range pool.Results() {
		if r.Err != nil {
			return nil, r.Err
		}
		results[r.Index] = *r.Value
	}
	return results, nil
}

// Demo analyzes the fixed example set.
func (s *AnalyzerService) Demo(ctx context.Context) ([]domain.DemoAnalysis, error) {
	passwords := make([]string, len(demoPasswords))
	for i, d := range demoPasswords {
		passwords[i] = d.Password
	}

	results, err := s.AnalyzeBatch(ctx, passwords)
	if err != nil {
		return nil, err
	}

	demos := make([]domain.DemoAnalysis, len(results))
	for i, d := range demoPasswords {
		demos[i] = domain.DemoAnalysis{
			Password:    d.Password,
			Description: d.Description,
			Analysis:    results[i],
		}
	}
	return demos, nil
}
