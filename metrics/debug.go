package metrics

import (
	"statline/config"
	"statline/log"
)

// debugSink implements the Sink interface by printing every call through a logging
// engine instead of transmitting anything. Names are joined with the configured statsd
// delimiter so the printed output matches what the statsd sink would put on the wire.
type debugSink struct {
	cfg *config.Node
	out log.Logger
}

// DebugSinkFactory creates a factory for sinks that print all metric calls to the
// specified logging engine, for diagnosing what would be emitted. A nil engine prints
// to standard output at debug verbosity.
func DebugSinkFactory(out log.Logger) SinkFactory {
	return func(cfg *config.Node) Sink {
		if out == nil {
			out = log.NewConsoleLogger(log.Debug)
		}

		return &debugSink{cfg: cfg, out: out}
	}
}

func (s *debugSink) FormatName(globalPrefix, host, prefix, name Name) string {
	formatted := Join(s.cfg.String(OptStatsdDelimiter), true, globalPrefix, host, prefix, name)
	s.out.Debug("metrics: format name: global=%v host=%v prefix=%v name=%v formatted=%s",
		globalPrefix.Flatten(), host.Flatten(), prefix.Flatten(), name.Flatten(), formatted)

	return formatted
}

func (s *debugSink) Gauge(name string, value float64) error {
	s.out.Debug("metrics: gauge: name=%s value=%v", name, value)
	return nil
}

func (s *debugSink) Counter(name string, value int64, rate SampleRate) error {
	if rateValue, ok := rate.Value(); ok {
		s.out.Debug("metrics: counter: name=%s value=%d rate=%v", name, value, rateValue)
	} else {
		s.out.Debug("metrics: counter: name=%s value=%d", name, value)
	}

	return nil
}

func (s *debugSink) Timer(name string, value float64) error {
	s.out.Debug("metrics: timer: name=%s value=%v", name, value)
	return nil
}
