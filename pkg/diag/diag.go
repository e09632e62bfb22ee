// Package diag provides sinks for human-readable input diagnostics.
//
// A Reporter only reports. It never returns an error and never changes the
// control flow of the code that calls it.
package diag

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Reporter receives diagnostic messages.
type Reporter interface {
	Report(msg string)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(msg string)

// Report calls f(msg).
func (f ReporterFunc) Report(msg string) {
	f(msg)
}

// Discard is a Reporter that drops every message.
var Discard Reporter = ReporterFunc(func(string) {})

// WriterReporter writes each message followed by a newline to an io.Writer.
//
// Writes are unbuffered; write errors are ignored.
type WriterReporter struct {
	w io.Writer
}

// NewWriter returns a Reporter that writes to w.
func NewWriter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Stderr returns a Reporter bound to os.Stderr.
func Stderr() *WriterReporter {
	return NewWriter(os.Stderr)
}

// Report writes msg and a trailing newline in a single write.
func (r *WriterReporter) Report(msg string) {
	line := make([]byte, 0, len(msg)+1)
	line = append(line, msg...)
	line = append(line, '\n')
	_, _ = r.w.Write(line)
}

// SlogReporter emits each message as a structured log record.
// Works with any slog handler (text, JSON, tint, etc.).
type SlogReporter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlog creates a Reporter that logs messages at warn level.
func NewSlog(logger *slog.Logger) *SlogReporter {
	return &SlogReporter{logger: logger, level: slog.LevelWarn}
}

// WithLevel returns a copy of r that logs at level.
func (r *SlogReporter) WithLevel(level slog.Level) *SlogReporter {
	return &SlogReporter{logger: r.logger, level: level}
}

// Report logs msg with a "component" attribute of "safeinput".
func (r *SlogReporter) Report(msg string) {
	r.logger.Log(context.Background(), r.level, msg, slog.String("component", "safeinput"))
}
