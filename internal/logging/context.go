package logging

import (
	"context"
	"log/slog"

	"resumetailor/internal/services"
)

// WithContext enriches the logger with submission, stage, and request
// identifiers found in the context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if ctx == nil {
		return logger
	}
	if id, ok := services.SubmissionIDFromContext(ctx); ok {
		logger = logger.With(String(FieldSubmissionID, id))
	}
	if stage, ok := services.StageFromContext(ctx); ok {
		logger = logger.With(String(FieldStage, stage))
	}
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		logger = logger.With(String(FieldRequestID, rid))
	}
	return logger
}
