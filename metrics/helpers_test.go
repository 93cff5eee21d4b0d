package metrics

import (
	"sync"

	"statline/config"
)

// resetGlobalState restores the process-wide configuration defaults and empties the
// logger registry, isolating tests from one another.
func resetGlobalState() {
	globalConfig.Reset()

	globalConfig.Define(OptGlobalPrefix, Name{})
	globalConfig.Define(OptPrependHost, false)
	globalConfig.Define(OptPrependHostReverse, false)
	globalConfig.Define(OptHost, "host.example.com")
	globalConfig.Define(OptStatsdDelimiter, ".")
	globalConfig.Define(OptStatsdHost, "localhost")
	globalConfig.Define(OptStatsdPort, 8125)
	globalConfig.Define(optSinkFactory, StatsdSinkFactory())

	resetRegistry()
}

// recordedMetric captures one call that reached a recording sink.
type recordedMetric struct {
	kind  string
	name  string
	value float64
	rate  SampleRate
}

// recordingSink implements the Sink interface by capturing every call in memory,
// joining names with "." the way the statsd sink would.
type recordingSink struct {
	mutex   sync.Mutex
	metrics []recordedMetric
}

func newRecordingLogger() (*Logger, *recordingSink) {
	sink := &recordingSink{}
	logger := &Logger{
		cfg:  config.NewNode(globalConfig),
		sink: sink,
	}

	return logger, sink
}

func (s *recordingSink) FormatName(globalPrefix, host, prefix, name Name) string {
	return Join(".", true, globalPrefix, host, prefix, name)
}

func (s *recordingSink) Gauge(name string, value float64) error {
	s.record(recordedMetric{kind: "gauge", name: name, value: value})
	return nil
}

func (s *recordingSink) Counter(name string, value int64, rate SampleRate) error {
	s.record(recordedMetric{kind: "counter", name: name, value: float64(value), rate: rate})
	return nil
}

func (s *recordingSink) Timer(name string, value float64) error {
	s.record(recordedMetric{kind: "timer", name: name, value: value})
	return nil
}

func (s *recordingSink) record(metric recordedMetric) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.metrics = append(s.metrics, metric)
}

func (s *recordingSink) recorded() []recordedMetric {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	recorded := make([]recordedMetric, len(s.metrics))
	copy(recorded, s.metrics)

	return recorded
}
