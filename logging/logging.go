// SPDX-License-Identifier: MIT

// Package logging builds the leveled logfmt logger used by the gridview
// command and maps the input selection to a default verbosity.
//
// go-kit levels stop at debug, so this package adds a trace level of its
// own: records sent through Trace carry level=trace and are only written
// by loggers built with LevelAll.
package logging

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/lvgrid/config"
)

// Level is a verbosity threshold, ordered from quietest to noisiest.
type Level int

const (
	// LevelInfo shows info, warn and error records.
	LevelInfo Level = iota
	// LevelDebug adds debug records.
	LevelDebug
	// LevelAll lets every record through, including Trace records.
	LevelAll
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelAll:
		return "all"
	default:
		return "unknown"
	}
}

// option converts l to a go-kit filter option.
func (l Level) option() level.Option {
	switch l {
	case LevelDebug:
		return level.AllowDebug()
	case LevelAll:
		return level.AllowAll()
	default:
		return level.AllowInfo()
	}
}

// ForInput picks the level for a run: the worked example is noisier by
// default than the full input, and verbose raises either by one step.
//
//	actual          → info
//	actual, verbose → debug
//	test            → debug
//	test, verbose   → all
func ForInput(in config.Input, verbose bool) Level {
	switch {
	case in == config.InputTest && verbose:
		return LevelAll
	case in == config.InputTest, verbose:
		return LevelDebug
	default:
		return LevelInfo
	}
}

// New returns a logfmt logger writing to w, stamped with UTC time and the
// caller, that drops records below lvl.
//
// The timestamp and caller are bound in the outermost context so that
// level.Debug(logger).Log and Trace(logger).Log report the calling file.
func New(w io.Writer, lvl Level) log.Logger {
	var logger log.Logger
	logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = traceFilter{next: logger, allow: lvl >= LevelAll}
	logger = level.NewFilter(logger, lvl.option())

	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

// traceValue marks a record as trace level. It renders as "trace".
type traceValue struct{}

func (traceValue) String() string { return "trace" }

// Trace returns a logger whose records are tagged level=trace. Loggers from
// New drop them unless built with LevelAll. go-kit's own level filter lets
// them pass because it does not recognise the value.
func Trace(logger log.Logger) log.Logger {
	return log.WithPrefix(logger, level.Key(), traceValue{})
}

// traceFilter drops trace records unless allow is set.
type traceFilter struct {
	next  log.Logger
	allow bool
}

func (f traceFilter) Log(keyvals ...interface{}) error {
	if !f.allow {
		for i := 0; i+1 < len(keyvals); i += 2 {
			if _, ok := keyvals[i+1].(traceValue); ok && keyvals[i] == level.Key() {
				return nil
			}
		}
	}

	return f.next.Log(keyvals...)
}
