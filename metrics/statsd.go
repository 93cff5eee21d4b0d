package metrics

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"statline/config"
)

// statsd metric type tags.
const (
	gaugeType   = "g"
	counterType = "c"
	timerType   = "ms"
)

// sanitizer rewrites the characters that are structural in the statsd line protocol,
// so that user-supplied data can never break protocol framing.
var sanitizer = strings.NewReplacer(":", "-", "|", "-", "@", "-", "\n", "-")

// statsdSink implements the Sink interface by serializing each metric in the statsd
// plaintext format and sending it as a single best-effort UDP datagram to the
// configured collection daemon. The delimiter and transport target resolve through the
// owning logger's configuration layer, so they may be overridden per logger.
type statsdSink struct {
	cfg *config.Node
}

// StatsdSinkFactory creates the factory for statsd sinks. It is the sink factory in
// use unless SetSinkFactory selects otherwise.
func StatsdSinkFactory() SinkFactory {
	return func(cfg *config.Node) Sink {
		return &statsdSink{cfg: cfg}
	}
}

func (s *statsdSink) FormatName(globalPrefix, host, prefix, name Name) string {
	return Join(s.cfg.String(OptStatsdDelimiter), true, globalPrefix, host, prefix, name)
}

func (s *statsdSink) Gauge(name string, value float64) error {
	return s.send(name, formatValue(value), gaugeType, SampleRate{})
}

func (s *statsdSink) Counter(name string, value int64, rate SampleRate) error {
	return s.send(name, strconv.FormatInt(value, 10), counterType, rate)
}

func (s *statsdSink) Timer(name string, value float64) error {
	return s.send(name, formatValue(value), timerType, SampleRate{})
}

// send serializes one metric line and transmits it as one UDP datagram. Every field is
// sanitized independently before interpolation. The socket is acquired fresh per call
// and released unconditionally afterward; a shared socket is unsafe across concurrent
// emission calls. Delivery is fire-and-forget: only local failures to create or write
// the socket surface as errors.
func (s *statsdSink) send(name string, value string, typeTag string, rate SampleRate) error {
	var line string
	if rateValue, ok := rate.Value(); ok {
		line = fmt.Sprintf(
			"%s:%s|%s@%s",
			sanitizer.Replace(name),
			sanitizer.Replace(value),
			sanitizer.Replace(typeTag),
			sanitizer.Replace(formatValue(rateValue)),
		)
	} else {
		line = fmt.Sprintf(
			"%s:%s|%s",
			sanitizer.Replace(name),
			sanitizer.Replace(value),
			sanitizer.Replace(typeTag),
		)
	}

	target := net.JoinHostPort(s.cfg.String(OptStatsdHost), strconv.Itoa(s.cfg.Int(OptStatsdPort)))

	conn, err := net.Dial("udp", target)
	if err != nil {
		return fmt.Errorf("statsd: error opening socket: target=%s err=%v", target, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(line)); err != nil {
		return fmt.Errorf("statsd: error sending datagram: target=%s err=%v", target, err)
	}

	return nil
}

// formatValue serializes a numeric value without exponent notation, since statsd
// daemons parse plain decimal representations.
func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
