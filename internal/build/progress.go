package build

import (
	"log/slog"
	"time"
)

// progressReporter throttles ingest progress logging to at most once per
// interval, so a multi-million-document dump doesn't flood the log with a
// line per document (spec.md §5 supplemented feature: progress reporting).
type progressReporter struct {
	logger   *slog.Logger
	step     string
	interval time.Duration
	last     time.Time
	count    int
}

func newProgressReporter(logger *slog.Logger, step string, interval time.Duration) *progressReporter {
	return &progressReporter{logger: logger, step: step, interval: interval}
}

// Tick records one unit of progress and logs a summary line if interval has
// elapsed since the last one.
func (p *progressReporter) Tick() {
	p.count++
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
		return
	}
	if now.Sub(p.last) < p.interval {
		return
	}
	p.logger.Info("build progress", slog.String("step", p.step), slog.Int("count", p.count))
	p.last = now
}

// Done logs a final summary line regardless of throttling.
func (p *progressReporter) Done() {
	p.logger.Info("build step complete", slog.String("step", p.step), slog.Int("count", p.count))
}
