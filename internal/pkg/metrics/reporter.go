package metrics

import (
	"go.uber.org/zap"
)

// Reporter is the structured event log for the service. Callers must never
// pass password material through it; fields are limited to derived values
// (lengths, tiers, durations).
type Reporter struct {
	logger *zap.Logger
}

func NewReporter() (*Reporter, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Reporter{logger: logger}, nil
}

// NewNopReporter discards everything. Used by the CLI front end and tests,
// where structured stdout logging would corrupt the rendered report.
func NewNopReporter() *Reporter {
	return &Reporter{logger: zap.NewNop()}
}

func (r *Reporter) Record(event string, fields ...zap.Field) {
	r.logger.Info(event, fields...)
}

func (r *Reporter) Error(msg string, err error, fields ...zap.Field) {
	r.logger.Error(msg, append(fields, zap.Error(err))...)
}

func (r *Reporter) Logger() *zap.Logger {
	return r.logger
}

func (r *Reporter) Sync() {
	_ = r.logger.Sync()
}
