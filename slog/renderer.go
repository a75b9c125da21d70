// Package slog provides logging decorators for mkdict services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mkdict"
)

// Ensure LoggingRenderer implements mkdict.Renderer.
var _ mkdict.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   mkdict.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next mkdict.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the page being rendered and delegates to the wrapped renderer.
func (r *LoggingRenderer) Render(ctx context.Context, url, readySelector string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("render",
			"url", url,
			"ready", readySelector,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url, readySelector)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}
