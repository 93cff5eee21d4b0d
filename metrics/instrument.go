package metrics

import (
	"time"
)

// Stopwatch is a simple abstraction to help measure execution durations.
type Stopwatch struct {
	start time.Time
}

// NewStopwatch creates and starts an execution stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		start: time.Now(),
	}
}

// Elapsed returns the amount of time that has elapsed since the stopwatch was started.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// WithTimer runs the body and emits its wall-clock duration as a timer metric. Timing
// starts immediately before the body begins, and the metric is emitted in a deferred
// call on the way out, so the attempt is timed even when the body returns an error or
// panics. The body's error is returned unchanged; a transmission failure is not
// allowed to mask it.
func WithTimer(logger *Logger, name Name, body func() error) error {
	watch := NewStopwatch()
	defer func() {
		logger.TimerDuration(name, watch.Elapsed())
	}()

	return body()
}

// WithCounter emits a counter of 1 at entry, then runs the body. A nil rate pointer
// counts every entry; otherwise the counter is sampled at the specified rate. An
// invalid rate surfaces before the body runs.
func WithCounter(logger *Logger, name Name, rate *float64, body func() error) error {
	var err error
	if rate == nil {
		err = logger.Counter(name, 1)
	} else {
		err = logger.SampledCounter(name, 1, *rate)
	}

	if err != nil {
		return err
	}

	return body()
}

// GaugeResult runs the body and emits its result as a gauge metric. Nothing is emitted
// when the body fails.
func GaugeResult(logger *Logger, name Name, body func() (float64, error)) (float64, error) {
	result, err := body()
	if err != nil {
		return result, err
	}

	return result, logger.Gauge(name, result)
}
