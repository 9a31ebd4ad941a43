package entity

import "context"

// Logger is the structured logger every component takes.
// Key-value pairs follow msg, and err where there is one.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(ctx context.Context, msg string, kv ...any)              {}
func (NopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}
