package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	t.Run("request id from context", func(t *testing.T) {
		var buf bytes.Buffer
		h, err := NewHandler(&buf, FormatJSON, slog.LevelInfo, "/nonexistent", middleware.RequestIDKey)
		require.NoError(t, err)

		ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
		slog.New(h).InfoContext(ctx, "hello")

		assert.Contains(t, buf.String(), `"request_id":"req-1"`)
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("attrs keep request id handling", func(t *testing.T) {
		var buf bytes.Buffer
		h, err := NewHandler(&buf, FormatText, slog.LevelInfo, "/nonexistent", middleware.RequestIDKey)
		require.NoError(t, err)

		ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-2")
		slog.New(h).With("component", "listing").InfoContext(ctx, "hello")

		assert.Contains(t, buf.String(), "component=listing")
		assert.Contains(t, buf.String(), "request_id=req-2")
	})

	t.Run("level filter", func(t *testing.T) {
		var buf bytes.Buffer
		h, err := NewHandler(&buf, FormatText, slog.LevelWarn, "/", nil)
		require.NoError(t, err)

		slog.New(h).Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewHandler(&bytes.Buffer{}, "xml", slog.LevelInfo, "/", nil)
		assert.Error(t, err)
	})
}
