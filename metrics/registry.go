package metrics

import (
	"os"
	"sync"

	"statline/config"
)

// Option names resolved through the hierarchical configuration. All of them live on
// the process-wide root; the ones without a dedicated Logger setter may still be
// overridden per instance through Logger.Config.
const (
	// OptGlobalPrefix is the name component prepended to every metric emitted by
	// every logger. Process-wide only.
	OptGlobalPrefix = "global_prefix"
	// OptPrependHost enables prepending the host path to formatted names.
	OptPrependHost = "prepend_host"
	// OptPrependHostReverse reverses the prepended host path.
	OptPrependHostReverse = "prepend_host_reverse"
	// OptHost is the host name component; defaults to the machine hostname.
	OptHost = "host"
	// OptPrefix is a logger's own name prefix.
	OptPrefix = "prefix"
	// OptStatsdDelimiter joins name tokens on the statsd wire.
	OptStatsdDelimiter = "statsd_delimiter"
	// OptStatsdHost is the collection daemon host.
	OptStatsdHost = "statsd_host"
	// OptStatsdPort is the collection daemon UDP port.
	OptStatsdPort = "statsd_port"

	// optSinkFactory selects the Sink variant that GetLogger instantiates. It is
	// process-wide only and deliberately has no per-instance override path.
	optSinkFactory = "sink_factory"
)

// globalConfig is the process-wide configuration root. It is created once at startup,
// is never torn down, and parents the configuration layer of every logger.
var globalConfig = newGlobalConfig()

// Package-level accessors over the authoritative root options.
var (
	setGlobalPrefix, _       = globalConfig.Bind(OptGlobalPrefix)
	setPrependHost, _        = globalConfig.Bind(OptPrependHost)
	setPrependHostReverse, _ = globalConfig.Bind(OptPrependHostReverse)
	setHost, _               = globalConfig.Bind(OptHost)
	setStatsdDelimiter, _    = globalConfig.Bind(OptStatsdDelimiter)
	setStatsdHost, _         = globalConfig.Bind(OptStatsdHost)
	setStatsdPort, _         = globalConfig.Bind(OptStatsdPort)

	setSinkFactory, getSinkFactory = globalConfig.Bind(optSinkFactory)
)

// The logger registry caches one instance per distinct prefix for the process
// lifetime. Creation is guarded so that concurrent first lookups of the same prefix
// yield exactly one instance.
var (
	registryMutex sync.Mutex
	registry      = make(map[string]*Logger)
)

func newGlobalConfig() *config.Node {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	root := config.NewNode(nil)

	root.Define(OptGlobalPrefix, Name{})
	root.Define(OptPrependHost, false)
	root.Define(OptPrependHostReverse, false)
	root.Define(OptHost, hostname)
	root.Define(OptStatsdDelimiter, ".")
	root.Define(OptStatsdHost, "localhost")
	root.Define(OptStatsdPort, 8125)
	root.Define(optSinkFactory, StatsdSinkFactory())

	return root
}

// GlobalConfig exposes the process-wide configuration root. Mutations apply to every
// logger that has not locally overridden the option in question; callers mutating it
// concurrently with emission should do so only during initialization.
func GlobalConfig() *config.Node {
	return globalConfig
}

// SetGlobalPrefix sets the name component prepended to every emitted metric.
func SetGlobalPrefix(prefix Name) {
	setGlobalPrefix(prefix)
}

// SetPrependHost sets the process-wide default for host prepending.
func SetPrependHost(prepend bool) {
	setPrependHost(prepend)
}

// SetPrependHostReverse sets the process-wide default for host path reversal.
func SetPrependHostReverse(reverse bool) {
	setPrependHostReverse(reverse)
}

// SetHost sets the process-wide host name component. A dotted hostname string is split
// into a path at formatting time; an explicit Path passes through unchanged.
func SetHost(host Name) {
	setHost(host)
}

// SetStatsdDelimiter sets the process-wide default statsd name delimiter.
func SetStatsdDelimiter(delimiter string) {
	setStatsdDelimiter(delimiter)
}

// SetStatsdHost sets the process-wide default collection daemon host.
func SetStatsdHost(host string) {
	setStatsdHost(host)
}

// SetStatsdPort sets the process-wide default collection daemon UDP port.
func SetStatsdPort(port int) {
	setStatsdPort(port)
}

// SetSinkFactory selects the sink variant instantiated for subsequently created
// loggers. Loggers already cached in the registry keep the sink they were built with.
func SetSinkFactory(factory SinkFactory) {
	setSinkFactory(factory)
}

// SinkFactoryInUse reads the currently selected sink factory.
func SinkFactoryInUse() SinkFactory {
	value, ok := getSinkFactory()
	if !ok {
		return StatsdSinkFactory()
	}

	return value.(SinkFactory)
}

// GetLogger fetches the logger cached for the specified prefix, creating and caching
// it on first lookup. At most one instance is ever created per distinct prefix, even
// under concurrent first access; instances live for the remainder of the process.
func GetLogger(prefix string) *Logger {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	if logger, ok := registry[prefix]; ok {
		return logger
	}

	logger := NewLogger(Token(prefix))
	registry[prefix] = logger

	return logger
}

// resetRegistry discards all cached loggers. Test isolation only.
func resetRegistry() {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry = make(map[string]*Logger)
}
