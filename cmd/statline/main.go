package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"statline/log"
	"statline/meta"
	"statline/metrics"

	"github.com/getsentry/raven-go"
)

func main() {
	configPath := flag.String(
		"config",
		os.Getenv("STATLINE_CONFIG"),
		"path to the configuration file on disk",
	)
	version := flag.Bool(
		"version",
		false,
		"print the compiled statline version SHA",
	)
	verbosity := flag.String(
		"verbosity",
		"error",
		"desired logging verbosity: one of error, warn, info, debug",
	)
	prefix := flag.String(
		"prefix",
		"statline",
		"logger prefix under which the metric is emitted",
	)
	debug := flag.Bool(
		"debug",
		false,
		"print the metric instead of transmitting it",
	)
	flag.Parse()

	// Report the compiled version and exit
	if *version {
		fmt.Printf("statline/%s\n", meta.VersionSHA)
		return
	}

	// Logging configuration; default to log.Error verbosity
	level, _ := log.ParseLevel(*verbosity)
	logger := log.NewConsoleLogger(level)
	logger.Debug("main: initialized logger: level=%v", level)

	// Parse application configuration, when specified
	if *configPath != "" {
		logger.Debug("main: reading and parsing config: path=%s", *configPath)
		config, err := meta.ParseConfig(*configPath)
		if err != nil {
			panic(err)
		}

		// Configure error reporting
		if config.Application != nil && config.Application.SentryDSN != "" {
			raven.SetDSN(config.Application.SentryDSN)
			raven.SetRelease(meta.VersionSHA)
		}

		config.Apply()
	}

	if *debug {
		metrics.SetSinkFactory(metrics.DebugSinkFactory(log.NewConsoleLogger(log.Debug)))
	}

	metricType, name, value, rate, err := parseMetricArgs(flag.Args())
	if err != nil {
		logger.Error("main: %v", err)
		fmt.Fprintf(os.Stderr, "usage: statline [flags] <gauge|counter|timer> <name> <value> [rate]\n")
		os.Exit(2)
	}

	emitter := metrics.GetLogger(*prefix)

	logger.Info(
		"main: emitting metric: type=%s name=%s value=%v",
		metricType,
		name,
		value,
	)

	switch metricType {
	case "gauge":
		err = emitter.Gauge(metrics.Token(name), value)
	case "counter":
		if rate != nil {
			err = emitter.SampledCounter(metrics.Token(name), int64(value), *rate)
		} else {
			err = emitter.Counter(metrics.Token(name), int64(value))
		}
	case "timer":
		err = emitter.Timer(metrics.Token(name), value)
	}

	if err != nil {
		raven.CaptureError(err, map[string]string{
			"type": metricType,
			"name": name,
		})

		logger.Error("main: failed to emit metric: err=%v", err)
		os.Exit(1)
	}

	logger.Debug("main: metric emitted")
}

// parseMetricArgs validates the positional arguments describing the metric to emit:
// a metric type, a name, a numeric value, and an optional counter sample rate.
func parseMetricArgs(args []string) (metricType string, name string, value float64, rate *float64, err error) {
	if len(args) < 3 || len(args) > 4 {
		return "", "", 0, nil, fmt.Errorf("expected arguments: <type> <name> <value> [rate]")
	}

	metricType = args[0]
	switch metricType {
	case "gauge", "counter", "timer":
	default:
		return "", "", 0, nil, fmt.Errorf("unknown metric type: type=%s", metricType)
	}

	name = args[1]

	value, err = strconv.ParseFloat(args[2], 64)
	if err != nil {
		return "", "", 0, nil, fmt.Errorf("non-numeric metric value: value=%s", args[2])
	}

	if len(args) == 4 {
		parsed, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return "", "", 0, nil, fmt.Errorf("non-numeric sample rate: rate=%s", args[3])
		}

		if metricType != "counter" {
			return "", "", 0, nil, fmt.Errorf("sample rate only applies to counters")
		}

		rate = &parsed
	}

	return metricType, name, value, rate, nil
}
