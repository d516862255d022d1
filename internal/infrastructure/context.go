package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// contextKey is a type for context keys
type contextKey string

// RunIDContextKey is the key for storing the run ID in context.
const RunIDContextKey contextKey = "run_id"

// NewRunID generates a unique identifier for one pipeline run.
func NewRunID() string {
	return uuid.New().String()
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDContextKey, runID)
}

// GetRunID retrieves the run ID from context, empty when absent.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDContextKey).(string); ok {
		return runID
	}
	return ""
}

// LoggerWithRunID returns the global logger tagged with the given run ID so
// every line of a run can be correlated across sinks.
func LoggerWithRunID(runID string) *slog.Logger {
	return GetLogger().With(slog.String("run_id", runID))
}
