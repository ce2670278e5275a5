// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// report.go - progress events.
//
// Reporting is fire-and-forget: Report must not block the search for long
// and must be safe for concurrent use when a Portfolio shares it.

package exact

import (
	"time"

	"github.com/google/uuid"
)

// EventKind classifies an Event.
type EventKind int

const (
	EventStart EventKind = iota
	EventForced
	EventGreedy
	EventOracle
	EventUpperBound
	EventProgress
	EventFinish
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventForced:
		return "forced"
	case EventGreedy:
		return "greedy"
	case EventOracle:
		return "oracle"
	case EventUpperBound:
		return "upper-bound"
	case EventProgress:
		return "progress"
	case EventFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Event is a point-in-time view of a run.
type Event struct {
	RunID    uuid.UUID
	Worker   int
	Kind     EventKind
	Strategy Strategy
	Nodes    int64
	Pruned   int64
	Lower    int
	Upper    int
	Depth    int
	Proven   bool
	Elapsed  time.Duration
}

// Reporter receives events.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Event)

// Report implements Reporter.
func (f ReporterFunc) Report(e Event) { f(e) }

// NopReporter discards every event.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(Event) {}

// MultiReporter fans an event out to several reporters in order.
type MultiReporter []Reporter

// Report implements Reporter.
func (m MultiReporter) Report(e Event) {
	for _, r := range m {
		if r != nil {
			r.Report(e)
		}
	}
}
