package port

import (
	"context"

	"passwordStrengthBackend/internal/core/domain"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, password string) (*domain.AnalysisResult, error)
	AnalyzeBatch(ctx context.Context, passwords []string) ([]domain.AnalysisResult, error)
	Demo(ctx context.Context) ([]domain.DemoAnalysis, error)
}
