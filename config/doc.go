// Package config implements a small hierarchical option store. A Node holds a local
// mapping of option names to values and may delegate lookups to a parent Node, so that a
// single process-wide root can hold defaults while any number of child layers locally
// shadow individual options without mutating the root or their siblings.
//
// Options are registered through one of two distinct mechanisms:
//
//	Define writes an authoritative default into the node immediately; the option has
//	exactly one value no matter how many accessors are later bound to it.
//
//	Bind writes nothing; reads fall through to the parent chain until the bound setter
//	is explicitly invoked, at which point the node shadows its parent for that option.
//
// The root Node owned by the metrics package is created at process startup and is never
// torn down; child layers live exactly as long as the logger instance that owns them.
package config
