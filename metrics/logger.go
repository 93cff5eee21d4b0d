package metrics

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"statline/config"
)

// ErrSampleRate is returned when a counter sample rate falls outside the closed
// interval [0.0, 1.0]. It is surfaced before any formatting or transmission occurs.
var ErrSampleRate = errors.New("metrics: sample rate must be in the interval [0.0, 1.0]")

// The sampling draw uses a private source so the library neither reseeds nor contends
// with the host application's use of the global math/rand source. rand.Rand is not safe
// for concurrent use, hence the lock.
var (
	samplerMutex sync.Mutex
	sampler      = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Logger is the metric emission front end for one prefix. It owns a configuration
// layer parented to the process-wide root, so host behavior and transport settings may
// be overridden per logger without mutating global state or any other instance.
//
// Loggers are cheap and safe for concurrent use; the usual way to obtain one is
// GetLogger, which caches one instance per distinct prefix for the process lifetime.
type Logger struct {
	cfg  *config.Node
	sink Sink
}

// NewLogger creates a logger with the specified prefix whose sink is built by the
// currently selected sink factory. The logger's configuration layer is parented to the
// process-wide root. Most callers should prefer GetLogger, which caches instances.
func NewLogger(prefix Name) *Logger {
	cfg := config.NewNode(globalConfig)
	cfg.Set(OptPrefix, prefix)

	return &Logger{
		cfg:  cfg,
		sink: SinkFactoryInUse()(cfg),
	}
}

// Config exposes the logger's own configuration layer for options without a dedicated
// setter. Writes shadow the process-wide defaults for this logger only.
func (l *Logger) Config() *config.Node {
	return l.cfg
}

// SetPrefix overrides the logger's name prefix.
func (l *Logger) SetPrefix(prefix Name) {
	l.cfg.Set(OptPrefix, prefix)
}

// SetPrependHost overrides, for this logger only, whether the host path is prepended
// to formatted names.
func (l *Logger) SetPrependHost(prepend bool) {
	l.cfg.Set(OptPrependHost, prepend)
}

// SetPrependHostReverse overrides, for this logger only, whether the prepended host
// path is reversed.
func (l *Logger) SetPrependHostReverse(reverse bool) {
	l.cfg.Set(OptPrependHostReverse, reverse)
}

// SetHost overrides the host name component for this logger only.
func (l *Logger) SetHost(host Name) {
	l.cfg.Set(OptHost, host)
}

// Gauge sends gauge metric data. The attempt is unconditional; the only side effect is
// one transmission.
func (l *Logger) Gauge(name Name, value float64) error {
	formatted, err := l.FormatName(name)
	if err != nil {
		return err
	}

	return l.sink.Gauge(formatted, value)
}

// Counter sends counter metric data unconditionally, with no sample rate annotation on
// the wire.
func (l *Logger) Counter(name Name, value int64) error {
	formatted, err := l.FormatName(name)
	if err != nil {
		return err
	}

	return l.sink.Counter(formatted, value, SampleRate{})
}

// SampledCounter sends counter metric data probabilistically:
//
//	P(send metric data) = rate
//
// The rate must lie in [0.0, 1.0]; violations fail with ErrSampleRate before any
// formatting or transmission. Each call takes an independent uniform draw r in [0, 1)
// and sends iff r < rate, so a rate of 0.0 never sends and a rate of 1.0 effectively
// always sends. A metric skipped by sampling is not an error and is never retried.
func (l *Logger) SampledCounter(name Name, value int64, rate float64) error {
	if rate < 0.0 || rate > 1.0 {
		return ErrSampleRate
	}

	samplerMutex.Lock()
	draw := sampler.Float64()
	samplerMutex.Unlock()

	if draw >= rate {
		return nil
	}

	formatted, err := l.FormatName(name)
	if err != nil {
		return err
	}

	return l.sink.Counter(formatted, value, Rate(rate))
}

// Timer sends timer metric data. The value is a duration in milliseconds; callers
// measuring wall-clock time in other units must convert first, or use TimerDuration.
func (l *Logger) Timer(name Name, value float64) error {
	formatted, err := l.FormatName(name)
	if err != nil {
		return err
	}

	return l.sink.Timer(formatted, value)
}

// TimerDuration sends timer metric data from a time.Duration, converting to
// milliseconds.
func (l *Logger) TimerDuration(name Name, duration time.Duration) error {
	return l.Timer(name, float64(duration)/float64(time.Millisecond))
}

// FormatName formats a call-site metric name in the context of this logger's resolved
// settings: when host prepending is enabled, the host component is derived (a dotted
// hostname string splits into a path) and optionally reversed, then the sink collapses
// the components in fixed order: global prefix, host, logger prefix, call-site name.
func (l *Logger) FormatName(name Name) (string, error) {
	host := Name{}

	if l.cfg.Bool(OptPrependHost) {
		value, _ := l.cfg.Get(OptHost)

		derived, err := hostFromValue(value)
		if err != nil {
			return "", err
		}
		host = derived
	}

	if l.cfg.Bool(OptPrependHostReverse) {
		host = host.Reverse()
	}

	globalValue, _ := globalConfig.Get(OptGlobalPrefix)
	globalPrefix, err := nameFromValue(globalValue)
	if err != nil {
		return "", err
	}

	prefixValue, _ := l.cfg.Get(OptPrefix)
	prefix, err := nameFromValue(prefixValue)
	if err != nil {
		return "", err
	}

	return l.sink.FormatName(globalPrefix, host, prefix, name), nil
}
