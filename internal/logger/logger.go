// Package logger provides the slog handler used for iconbg diagnostics.
//
// Log output format:
//
//	2006-01-02T15:04:05.000Z [LEVEL] message | key=value, key2=value2
//
// Diagnostics go to stderr by default, or to a size-rotated file when one is
// configured. Console progress lines are printed separately by the batch
// driver and never pass through this package.
package logger

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ///////////////////////////////////////////////
// Custom Levels
// ///////////////////////////////////////////////

const (
	LevelTrace slog.Level = -8
	LevelDebug slog.Level = slog.LevelDebug
	LevelInfo  slog.Level = slog.LevelInfo
	LevelWarn  slog.Level = slog.LevelWarn
	LevelError slog.Level = slog.LevelError
	LevelFail  slog.Level = 12
)

func levelName(l slog.Level) string {
	switch {
	case l <= LevelTrace:
		return "TRACE"
	case l <= LevelDebug:
		return "DEBUG"
	case l <= LevelInfo:
		return "INFO"
	case l <= LevelWarn:
		return "WARN"
	case l <= LevelError:
		return "ERROR"
	default:
		return "FAIL"
	}
}

// ParseLevel converts a case-insensitive level name to slog.Level.
// Unrecognized names map to LevelWarn, the default for a one-shot tool.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	case "fail":
		return LevelFail
	default:
		return LevelWarn
	}
}

// ///////////////////////////////////////////////
// Handler
// ///////////////////////////////////////////////

var lineEnding = "\n"

func init() {
	if runtime.GOOS == "windows" {
		lineEnding = "\r\n"
	}
}

// Handler is a slog.Handler that formats records as single text lines.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Level
	attrs []slog.Attr
	group string
}

// NewHandler creates a Handler that writes to w, filtering records below level.
func NewHandler(w io.Writer, level slog.Level) *Handler {
	return &Handler{w: w, level: level, mu: &sync.Mutex{}}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a log record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	buf.WriteString(r.Time.UTC().Format("2006-01-02T15:04:05.000Z"))
	buf.WriteString(" [")
	buf.WriteString(levelName(r.Level))
	buf.WriteString("] ")
	buf.WriteString(r.Message)

	n := 0
	writeAttr := func(a slog.Attr) {
		if n == 0 {
			buf.WriteString(" | ")
		} else {
			buf.WriteString(", ")
		}
		n++
		if h.group != "" {
			buf.WriteString(h.group)
			buf.WriteByte('.')
		}
		buf.WriteString(a.Key)
		buf.WriteByte('=')
		buf.WriteString(a.Value.String())
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	buf.WriteString(lineEnding)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, buf.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes pre-applied.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{w: h.w, mu: h.mu, level: h.level, attrs: merged, group: h.group}
}

// WithGroup returns a new Handler whose attribute keys are prefixed with
// name (e.g. "icon.path").
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{w: h.w, mu: h.mu, level: h.level, attrs: h.attrs, group: group}
}

// ///////////////////////////////////////////////
// Constructors
// ///////////////////////////////////////////////

// Options selects the destination and verbosity of diagnostics.
type Options struct {
	// Level is the minimum level name (trace, debug, info, warn, error).
	Level string
	// File is the log file path. Empty means write to the fallback writer.
	File string
	// MaxSizeMB is the rotation threshold for File.
	MaxSizeMB int
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from opts. When opts.File is set, records go to a
// lumberjack-rotated file; otherwise they go to fallback. The returned
// io.Closer must be closed to flush the log file.
func New(opts Options, fallback io.Writer) (*slog.Logger, io.Closer) {
	level := ParseLevel(opts.Level)
	if opts.File == "" {
		return slog.New(NewHandler(fallback, level)), nopCloser{}
	}
	lj := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: 3,
		MaxAge:     28,
	}
	return slog.New(NewHandler(lj, level)), lj
}

// Trace logs a message at LevelTrace.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// Fail logs a message at LevelFail.
func Fail(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelFail, msg, args...)
}
