// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures the process-wide logrus logger and carries
// per-search fields through a context.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const queryKey ctxKey = "query"

// slowThreshold marks a tracked operation as slow.
const slowThreshold = 2 * time.Second

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
}

// Configure sets the output and level of the standard logger. An empty level
// leaves the current level unchanged.
func Configure(w io.Writer, level string) error {
	if w != nil {
		logrus.SetOutput(w)
	}
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// L returns the process-wide logger.
func L() *logrus.Logger { return logrus.StandardLogger() }

// For returns a log entry carrying the fields stored in ctx.
func For(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if q, ok := ctx.Value(queryKey).(string); ok {
		entry = entry.WithField("query", q)
	}
	return entry
}

// WithQuery returns a context whose log entries are tagged with query.
func WithQuery(ctx context.Context, query string) context.Context {
	return context.WithValue(ctx, queryKey, query)
}

// Track logs the duration of an operation when the returned func is called.
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration", dur.String())
		if dur > slowThreshold {
			entry.Warnf("%s completed (slow)", msg)
		} else {
			entry.Debugf("%s completed", msg)
		}
	}
}
