package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/menuscrape"
)

// Ensure LoggingExtractor implements menuscrape.Extractor.
var _ menuscrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   menuscrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next menuscrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the source, strategy and outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, src *menuscrape.Source) (ex *menuscrape.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source", src.Name,
			"strategy", src.Strategy,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", menuscrape.ErrorCode(err), "err", err)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, src)
}
