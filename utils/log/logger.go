package log

import (
	"context"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

type ctxKey string

const (
	RequestIDKey ctxKey = "request_id"
	ClientIDKey  ctxKey = "client_id"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	SetDebug(os.Getenv("DEBUG") == "true")
	if logger.Load() == nil {
		logger.Store(zap.NewNop())
	}
}

// SetDebug swaps the process logger once configuration has been read.
// It is safe to call while other goroutines are logging.
func SetDebug(debug bool) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return
	}
	logger.Store(l)
}

func WithCtx(ctx context.Context) *zap.Logger {
	fields := []zap.Field{}

	if v := ctx.Value(RequestIDKey); v != nil {
		fields = append(fields, zap.Any(string(RequestIDKey), v))
	}
	if v := ctx.Value(ClientIDKey); v != nil {
		fields = append(fields, zap.Any(string(ClientIDKey), v))
	}

	return logger.Load().With(fields...)
}

func With(fields ...zap.Field) *zap.Logger {
	return logger.Load().With(fields...)
}

func Sync() error {
	return logger.Load().Sync()
}
