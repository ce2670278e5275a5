// SPDX-License-Identifier: MIT
// Package: twinwidth/internal/telemetry
//
// logger.go - zerolog construction and the logging Reporter.

package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/twinwidth/exact"
)

// NewLogger returns a timestamped zerolog logger at the named level. pretty
// selects the human-readable console writer.
func NewLogger(w io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("telemetry: log level %q: %w", level, err)
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "tww").Logger(), nil
}

// LogReporter writes solver events as structured log lines. Bound changes
// and run boundaries are logged at info level; progress events at debug
// level, at most once per interval. Safe for concurrent use.
type LogReporter struct {
	log      zerolog.Logger
	progress *rate.Sometimes
}

var _ exact.Reporter = (*LogReporter)(nil)

// NewLogReporter wraps log. interval ≤ 0 logs every progress event.
func NewLogReporter(log zerolog.Logger, interval time.Duration) *LogReporter {
	s := &rate.Sometimes{First: 1, Interval: interval}
	if interval <= 0 {
		s = &rate.Sometimes{Every: 1}
	}

	return &LogReporter{log: log, progress: s}
}

// Report implements exact.Reporter.
func (r *LogReporter) Report(e exact.Event) {
	if e.Kind == exact.EventProgress {
		r.progress.Do(func() { r.write(r.log.Debug(), e) })

		return
	}
	r.write(r.log.Info(), e)
}

func (r *LogReporter) write(ev *zerolog.Event, e exact.Event) {
	ev.Str("run", e.RunID.String()).
		Int("worker", e.Worker).
		Str("strategy", e.Strategy.String()).
		Int64("nodes", e.Nodes).
		Int64("pruned", e.Pruned).
		Int("lower", e.Lower).
		Str("upper", bound(e.Upper)).
		Int("depth", e.Depth).
		Bool("proven", e.Proven).
		Dur("elapsed", e.Elapsed).
		Msg(e.Kind.String())
}

func bound(v int) string {
	if v == exact.Unbounded {
		return "inf"
	}

	return fmt.Sprint(v)
}
