package logger

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

type loggerKey struct{}

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// Default returns the process-wide logger used by code paths that have no context,
// such as Value accessors and DataType strategies.
func Default() *zap.Logger {
	return global.Load()
}

// SetDefault replaces the process-wide logger. A nil logger installs a no-op logger.
func SetDefault(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	global.Store(logger)
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger stored in ctx, falling back to Default.
func Logger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
