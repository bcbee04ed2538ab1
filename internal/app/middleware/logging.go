package middleware

import (
	"context"
	"log/slog"
	"time"

	"smarthost/internal/app/commands"
	"smarthost/internal/app/queries"
	"smarthost/internal/domain/shared/domainerr"
)

// Logging records every command with its duration. Failures are logged at
// warn level for domain errors and error level for storage failures.
func Logging(logger *slog.Logger) CommandMiddleware {
	if logger == nil {
		panic("middleware: logger required")
	}
	return func(next commands.Bus) commands.Bus {
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			start := time.Now()
			res, err := next.Dispatch(ctx, cmd)
			logOutcome(ctx, logger, "command", cmd.Key(), start, err)
			return res, err
		})
	}
}

func QueryLogging(logger *slog.Logger) QueryMiddleware {
	if logger == nil {
		panic("middleware: logger required")
	}
	return func(next queries.Bus) queries.Bus {
		return queryFunc(func(ctx context.Context, q queries.Query) (any, error) {
			start := time.Now()
			res, err := next.Ask(ctx, q)
			logOutcome(ctx, logger, "query", q.Key(), start, err)
			return res, err
		})
	}
}

func logOutcome(ctx context.Context, logger *slog.Logger, kind, key string, start time.Time, err error) {
	attrs := []any{kind, key, "duration", time.Since(start)}
	if err == nil {
		logger.DebugContext(ctx, kind+" handled", attrs...)
		return
	}
	errKind := domainerr.Kind(err)
	attrs = append(attrs, "error", err, "error_kind", errKind)
	if errKind == "storage" {
		logger.ErrorContext(ctx, kind+" failed", attrs...)
		return
	}
	logger.WarnContext(ctx, kind+" rejected", attrs...)
}
