package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siterag"
)

// Ensure LoggingAsker implements siterag.Asker.
var _ siterag.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
type LoggingAsker struct {
	next   siterag.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next siterag.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the question.
func (a *LoggingAsker) Ask(ctx context.Context, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"question", question,
			"answer_chars", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, question)
}
