package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type levelRecorder struct {
	records []slog.Record
}

func (h *levelRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (h *levelRecorder) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *levelRecorder) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *levelRecorder) WithGroup(string) slog.Handler      { return h }

func TestNewPGXTracer(t *testing.T) {
	t.Run("query errors are warnings", func(t *testing.T) {
		rec := &levelRecorder{}
		tracer := NewPGXTracer(slog.New(rec))

		tracer.Logger.Log(context.Background(), tracelog.LogLevelError, "Query", map[string]any{
			"sql":  "SELECT 1",
			"args": []any{"secret"},
			"err":  "connection refused",
		})

		require.Len(t, rec.records, 1)
		r := rec.records[0]
		assert.Equal(t, slog.LevelWarn, r.Level)

		keys := map[string]bool{}
		r.Attrs(func(a slog.Attr) bool {
			keys[a.Key] = true
			return true
		})
		assert.True(t, keys["sql"])
		assert.True(t, keys["err"])
		assert.False(t, keys["args"])
	})

	t.Run("info is debug", func(t *testing.T) {
		rec := &levelRecorder{}
		NewPGXTracer(slog.New(rec)).Logger.Log(context.Background(), tracelog.LogLevelInfo, "Query", nil)

		require.Len(t, rec.records, 1)
		assert.Equal(t, slog.LevelDebug, rec.records[0].Level)
	})

	t.Run("unknown level is error", func(t *testing.T) {
		rec := &levelRecorder{}
		NewPGXTracer(slog.New(rec)).Logger.Log(context.Background(), tracelog.LogLevel(42), "Query", nil)

		require.Len(t, rec.records, 1)
		assert.Equal(t, slog.LevelError, rec.records[0].Level)
	})
}
