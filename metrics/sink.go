package metrics

import (
	"statline/config"
)

// Sink is the naming-and-transport strategy behind a Logger: it decides how the four
// name components collapse into one wire name and how a formatted metric leaves the
// process. Implementations must be safe for concurrent use; the statsd sink achieves
// this by never sharing a socket between calls.
type Sink interface {
	// FormatName collapses the four name components, in their fixed order, into the
	// final wire name.
	FormatName(globalPrefix, host, prefix, name Name) string

	// Gauge emits an instantaneous point-in-time value.
	Gauge(name string, value float64) error

	// Counter emits an incrementing-event value, annotated with the sample rate when
	// one is present. The sampling decision has already been made by the caller; a
	// sink never thins traffic on its own.
	Counter(name string, value int64, rate SampleRate) error

	// Timer emits a millisecond-denominated duration value.
	Timer(name string, value float64) error
}

// SinkFactory constructs the sink for a newly created Logger. The factory receives the
// logger's own configuration layer so that per-instance overrides (delimiter, transport
// target) resolve through that logger, falling back to the process-wide defaults.
type SinkFactory func(cfg *config.Node) Sink

// SampleRate is an optional counter sampling probability. The zero value denotes an
// unsampled counter, which is sent unconditionally and carries no rate annotation on
// the wire.
type SampleRate struct {
	value float64
	ok    bool
}

// Rate creates a present sample rate.
func Rate(value float64) SampleRate {
	return SampleRate{value: value, ok: true}
}

// Value reads the rate. The boolean is false for the unsampled zero value.
func (r SampleRate) Value() (float64, bool) {
	return r.value, r.ok
}
