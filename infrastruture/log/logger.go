// Package logger writes leveled, colored log lines tagged with a component prefix.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-tilemap/config"
)

var ErrNilWriter = errors.New("logger: nil writer")

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger tagging every line with prefix drawn in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

// Warn logs a recoverable problem.
func (l *Logger) Warn(msg string) {
	l.write(config.LogWarnColor, "WARN", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.ColorReset,
		levelColor, level, config.LogColorReset,
		msg)
}
