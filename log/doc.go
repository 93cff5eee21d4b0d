// Package log provides a minimal, leveled logging engine used by the debug metrics sink
// and the command line emitter. It is intentionally small: the library itself never logs
// on the emission hot path, so the only consumers are diagnostic surfaces.
package log
