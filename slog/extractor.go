// Package slog provides logging decorators for webeater services.
package slog

import (
	"log/slog"
	"time"

	"github.com/tiagrib/webeater"
)

// Ensure LoggingExtractor implements webeater.Extractor.
var _ webeater.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging for removal counts
// and selector outcomes.
type LoggingExtractor struct {
	next   webeater.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webeater.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(pageURL, html string, hints webeater.Hint) (*webeater.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(pageURL, html, hints)
	if err != nil {
		e.logger.Error("extraction failed", "url", pageURL, "err", err)
		return nil, err
	}

	selector := result.Selector
	if selector == "" {
		selector = "(body fallback)"
	}
	e.logger.Info("extraction",
		"url", pageURL,
		"selector", selector,
		"removed", result.Removed,
		"bytes", len(result.ContentHTML),
		"duration", time.Since(begin),
	)
	for _, d := range result.Diagnostics {
		e.logger.Warn("selector skipped", "source", d.Source, "reason", d.Message)
	}
	return result, nil
}
