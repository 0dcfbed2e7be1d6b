// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

// Package logging builds component loggers on top of log/slog.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logging levels, compatible with slog.
const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// levelNames maps custom levels to printed names.
var levelNames = map[slog.Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// LoggerFactory creates component loggers sharing one handler.
type LoggerFactory struct {
	handler slog.Handler
}

// NewLoggerFactory creates text logger factory writing to w at level.
// Nil writer means stderr.
func NewLoggerFactory(w io.Writer, level slog.Level) *LoggerFactory {
	if w == nil {
		w = os.Stderr
	}

	return &LoggerFactory{
		handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: customizeLogLevels,
		}),
	}
}

// CreateLogger returns logger tagged with component name.
func (f *LoggerFactory) CreateLogger(name string) *slog.Logger {
	return slog.New(f.handler).With("component", name)
}

// Discard returns logger dropping every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns logger or discarding logger when nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}

	return logger
}

// LevelFor maps CLI verbosity switches to level.
func LevelFor(verbose []bool, quiet bool) slog.Level {
	switch {
	case quiet:
		return LevelError
	case len(verbose) >= 2:
		return LevelTrace
	case len(verbose) == 1:
		return LevelDebug
	default:
		return LevelWarn
	}
}

// Trace logs at trace level.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// customizeLogLevels replaces numeric custom level names.
func customizeLogLevels(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}

	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	if name, ok := levelNames[level]; ok {
		return slog.Attr{Key: a.Key, Value: slog.StringValue(name)}
	}

	return a
}
