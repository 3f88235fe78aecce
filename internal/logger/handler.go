package logger

import (
	"context"
	"fmt"
	"go/build"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// NewHandler builds a handler writing in format to w. Source file paths are
// trimmed of rootPath (or GOPATH) and a request_id attribute is added whenever
// requestIdKey is present in the record context.
func NewHandler(w io.Writer, format Format, lvl slog.Level, rootPath string, requestIdKey any) (slog.Handler, error) {
	ho := slog.HandlerOptions{
		Level: lvl,
	}

	var h slog.Handler
	switch format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, &ho)
	case FormatText:
		h = slog.NewTextHandler(w, &ho)
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be json or text, got %q", format)
	}

	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		gopath = build.Default.GOPATH
	}

	return &handler{
		baseHandler:  h,
		rootPath:     strings.TrimSuffix(rootPath, "/") + "/",
		goPath:       strings.TrimSuffix(gopath, "/") + "/",
		requestIdKey: requestIdKey,
	}, nil
}

// SetupSLog installs NewHandler output on stderr as the slog default.
func SetupSLog(format Format, lvl slog.Level, rootPath string, requestIdKey any) error {
	h, err := NewHandler(os.Stderr, format, lvl, rootPath, requestIdKey)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(h))
	return nil
}

type handler struct {
	baseHandler  slog.Handler
	rootPath     string
	goPath       string
	requestIdKey any
}

func (e *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return e.baseHandler.Enabled(ctx, level)
}

func (e *handler) Handle(ctx context.Context, record slog.Record) error {
	record = record.Clone()

	if record.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := fs.Next()
		file := f.File
		if strings.HasPrefix(file, e.rootPath) {
			file = file[len(e.rootPath):]
		} else if strings.HasPrefix(file, e.goPath) {
			file = file[len(e.goPath):]
		}
		record.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     file,
			Line:     f.Line,
		}))
	}

	if e.requestIdKey != nil {
		if requestId, ok := ctx.Value(e.requestIdKey).(string); ok {
			record.AddAttrs(slog.String("request_id", requestId))
		}
	}

	return e.baseHandler.Handle(ctx, record)
}

func (e *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := *e
	h.baseHandler = e.baseHandler.WithAttrs(attrs)
	return &h
}

func (e *handler) WithGroup(name string) slog.Handler {
	h := *e
	h.baseHandler = e.baseHandler.WithGroup(name)
	return &h
}
