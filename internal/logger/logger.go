package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
)

type implLogger struct {
	logger *log.Logger
	level  string
	tags   map[string]string
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// New creates a new Logger instance writing to stdout without colour.
func New(level string) Logger {
	return NewWithOptions(level, os.Stdout, false)
}

// NewWithOptions creates a Logger writing to w. When colored is true the level
// tags are coloured; fatih/color still disables colour when stdout is not a
// terminal or NO_COLOR is set.
func NewWithOptions(level string, w io.Writer, colored bool) Logger {
	tags := map[string]string{
		"debug": "[DEBUG]",
		"info":  "[INFO]",
		"warn":  "[WARN]",
		"error": "[ERROR]",
	}
	if colored {
		tags["debug"] = color.New(color.FgHiBlack).Sprint(tags["debug"])
		tags["info"] = color.New(color.FgCyan).Sprint(tags["info"])
		tags["warn"] = color.New(color.FgYellow).Sprint(tags["warn"])
		tags["error"] = color.New(color.FgRed, color.Bold).Sprint(tags["error"])
	}

	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  strings.ToLower(level),
		tags:   tags,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) printf(level, msg string, args ...interface{}) {
	if l.shouldLog(level) {
		l.logger.Printf(l.tags[level]+" "+msg, args...)
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.printf("debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.printf("info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.printf("warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.printf("error", msg, args...)
}
