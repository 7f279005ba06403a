// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the notes server and client.
//
// Every entry carries the process role, a timestamp and the name of the
// calling function in the "func" field. Request-scoped loggers travel in the
// context and are fetched with [FromContext] or [FromRequest].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	roleField   = "role"
	callerField = "func"

	defaultClientLogName = "notes-client.log"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger writes JSON entries to stdout.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger keeps the terminal free for the CLI and the browser:
// entries are appended to logPath, or to notes-client.log next to the
// executable when logPath is empty. Stderr is used if the file cannot be
// opened.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), defaultClientLogName)
	}

	var out io.Writer = os.Stderr
	if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		out = f
	}
	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = callerField
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(out).With().
		Str(roleField, role).
		Timestamp().
		Caller().
		Logger()}
}

// SetLevel applies a level name such as "info" globally. Empty or unknown
// names keep the current level.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if level == "" || err != nil {
		return
	}
	zerolog.SetGlobalLevel(parsed)
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithField returns a child logger with one more string field. The receiver
// is not changed.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// WithUserID returns a child logger tagged with the authenticated user.
func (l *Logger) WithUserID(userID int64) *Logger {
	return &Logger{l.With().Int64("user_id", userID).Logger()}
}

// FromContext never returns nil: without an attached logger zerolog hands
// out its default one.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
