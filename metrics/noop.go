package metrics

import (
	"statline/config"
)

// noopSink implements the Sink interface but ignores all metric data.
type noopSink struct{}

// NoopSinkFactory creates a factory for sinks that discard everything. Useful as the
// active factory when metrics reporting is disabled.
func NoopSinkFactory() SinkFactory {
	return func(cfg *config.Node) Sink {
		return &noopSink{}
	}
}

func (s *noopSink) FormatName(globalPrefix, host, prefix, name Name) string {
	return ""
}

func (s *noopSink) Gauge(name string, value float64) error {
	return nil
}

func (s *noopSink) Counter(name string, value int64, rate SampleRate) error {
	return nil
}

func (s *noopSink) Timer(name string, value float64) error {
	return nil
}
