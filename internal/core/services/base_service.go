package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"golang.org/x/sync/singleflight"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock is the source of "now". Nil means time.Now.
	Clock func() time.Time
}

// Now returns the current instant according to the service clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Clock returns the current instant. Tests inject fixed clocks.
type Clock = func() time.Time

// shareFlight runs fn once for every concurrent caller of key. The shared run
// keeps ctx values but not its cancellation, so one caller giving up never
// fails the others; each caller still returns as soon as its own ctx is done.
func shareFlight[T any](ctx context.Context, g *singleflight.Group, key string, fn func(context.Context) (T, error)) (T, bool, error) {
	var zero T
	ch := g.DoChan(key, func() (any, error) {
		return fn(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Shared, res.Err
		}
		return res.Val.(T), res.Shared, nil
	}
}
