package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Logger is a slog.Logger whose records also land in an in-memory line buffer,
// so the console can show recent output.
type Logger struct {
	*slog.Logger
	buf  *lineBuffer
	file *os.File
}

// Options selects the level and an optional append-only log file.
type Options struct {
	Level  string
	File   string
	Stderr bool
}

// New returns a Logger writing text records to the buffer, plus the file and stderr
// when requested. An unopenable file is skipped and reported through the logger itself.
func New(opts Options) *Logger {
	buf := &lineBuffer{}
	writers := []io.Writer{buf}
	if opts.Stderr {
		writers = append(writers, os.Stderr)
	}
	var fileErr error
	var f *os.File
	if opts.File != "" {
		_ = os.MkdirAll(filepath.Dir(opts.File), 0755)
		f, fileErr = os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if fileErr == nil {
			writers = append(writers, f)
		}
	}
	h := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	l := &Logger{Logger: slog.New(h), buf: buf, file: f}
	if fileErr != nil {
		l.Warn("log file unavailable", "path", opts.File, "error", fileErr)
	}
	return l
}

// ParseLevel maps debug/info/warn/error to a slog level. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Lines returns a copy of the buffered lines, oldest first.
func (l *Logger) Lines() []string {
	return l.buf.lines()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// lineBuffer keeps the last maxLines complete lines written to it.
type lineBuffer struct {
	mu      sync.Mutex
	entries []string
}

func (b *lineBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		b.entries = append(b.entries, line)
	}
	if over := len(b.entries) - maxLines; over > 0 {
		b.entries = append(b.entries[:0], b.entries[over:]...)
	}
	return len(p), nil
}

func (b *lineBuffer) lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}
