// Package logger is a thin shim over goLogger so the rest of the codebase
// imports one local package and gets context-aware construction for free.
package logger

import (
	"context"

	logger "github.com/Bparsons0904/goLogger"
)

type Logger = logger.Logger

var (
	New                = logger.New
	ContextWithTraceID = logger.ContextWithTraceID
)

// NewWithContext creates a named logger carrying the trace ID from ctx, if any.
func NewWithContext(ctx context.Context, name string) Logger {
	return logger.New(name).TraceFromContext(ctx)
}
