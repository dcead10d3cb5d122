package logger

import "context"

// noopLogger is the default until Initialize runs, so early code paths and
// tests can log without setup.
type noopLogger struct{}

func (n *noopLogger) Log(context.Context, LogEntry)  {}
func (n *noopLogger) Shutdown(context.Context) error { return nil }
