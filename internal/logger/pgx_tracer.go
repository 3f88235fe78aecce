package logger

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
)

// pgx is chatty at info level, everything below warn goes to debug.
// Query errors are warnings here: callers report the failure at error level.
var pgxLevels = map[tracelog.LogLevel]slog.Level{
	tracelog.LogLevelTrace: slog.LevelDebug,
	tracelog.LogLevelDebug: slog.LevelDebug,
	tracelog.LogLevelInfo:  slog.LevelDebug,
	tracelog.LogLevelWarn:  slog.LevelWarn,
	tracelog.LogLevelError: slog.LevelWarn,
}

// NewPGXTracer forwards pgx query logs to logger. Query arguments are dropped.
func NewPGXTracer(logger *slog.Logger) *tracelog.TraceLog {
	return &tracelog.TraceLog{
		Logger: tracelog.LoggerFunc(func(ctx context.Context, l tracelog.LogLevel, msg string, data map[string]any) {
			attrs := make([]slog.Attr, 0, len(data))
			for k, v := range data {
				switch k {
				case "args", "pid":
				default:
					attrs = append(attrs, slog.Any(k, v))
				}
			}

			sort.Slice(attrs, func(i, j int) bool {
				return attrs[i].Key < attrs[j].Key
			})

			lvl, ok := pgxLevels[l]
			if !ok {
				lvl = slog.LevelError
				attrs = append(attrs, slog.Any("INVALID_PGX_LOG_LEVEL", l))
			}

			if !logger.Enabled(ctx, lvl) {
				return
			}

			var pcs [1]uintptr
			// skip [runtime.Callers, this function, this function's caller * 3]
			runtime.Callers(5, pcs[:])

			r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
			r.AddAttrs(attrs...)
			_ = logger.Handler().Handle(ctx, r)
		}),
		LogLevel: tracelog.LogLevelDebug,
	}
}
