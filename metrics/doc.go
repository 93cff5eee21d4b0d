// Package metrics implements a client-side, fire-and-forget metrics emission library
// speaking the statsd plaintext protocol over UDP.
//
// Application code obtains a Logger keyed by a prefix and calls its Gauge, Counter, and
// Timer methods. Each call formats a fully-qualified metric name from up to four
// components, in order: the process-wide global prefix, an optional (possibly reversed)
// host-derived path, the logger's own prefix, and the call-site name. Every component is
// a Name, which may be absent, a single token, or an ordered path of tokens; empty
// tokens are dropped and the survivors are joined with a configurable delimiter.
//
// The formatted line is handed to a Sink, the pluggable naming-and-transport strategy.
// The statsd sink serializes one metric per UDP datagram and sends it best-effort; the
// noop and debug sinks exist for tests and for diagnosing what would be emitted.
//
// Configuration is resolved hierarchically: a process-wide root layer holds defaults,
// and each Logger owns a child layer that may locally override the host behavior,
// delimiter, and transport target without affecting any other logger. Delivery is
// explicitly unreliable: there is no batching, no retry, and no acknowledgement.
package metrics
