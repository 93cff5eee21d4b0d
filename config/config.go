package config

import (
	"sync"

	"github.com/spf13/cast"
)

// Node is one layer of hierarchical configuration: a local option mapping plus an
// optional read-only reference to a parent layer consulted on local misses.
type Node struct {
	options map[string]interface{}
	parent  *Node
	mutex   sync.RWMutex
}

// Setter writes a value for the option to which it is bound.
type Setter func(value interface{})

// Getter reads the current value of the option to which it is bound. The boolean
// indicates whether any layer held a value; it is false only when the option is unset
// along the entire parent chain, which is distinct from a stored nil, false, or empty
// value.
type Getter func() (interface{}, bool)

// NewNode creates a configuration layer delegating lookups to the specified parent.
// A nil parent creates a root layer.
func NewNode(parent *Node) *Node {
	return &Node{
		options: make(map[string]interface{}),
		parent:  parent,
	}
}

// Set unconditionally stores a value in this layer, shadowing any parent value for the
// same option within this node and its descendants.
func (n *Node) Set(name string, value interface{}) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.options[name] = value
}

// Get looks up an option locally, delegating to the parent chain on a miss. It returns
// false when no layer holds a value; unknown options are not an error.
func (n *Node) Get(name string) (interface{}, bool) {
	n.mutex.RLock()
	value, ok := n.options[name]
	n.mutex.RUnlock()

	if ok {
		return value, true
	}

	if n.parent != nil {
		return n.parent.Get(name)
	}

	return nil, false
}

// Reset clears this layer's local mapping, leaving the parent chain untouched.
func (n *Node) Reset() {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.options = make(map[string]interface{})
}

// Define registers an authoritative option: the default is written into this node
// immediately, and the returned accessors read and write that single shared value.
// Defining the same option again on the same node overwrites the stored value with the
// new default.
func (n *Node) Define(name string, def interface{}) (Setter, Getter) {
	n.Set(name, def)
	return n.Bind(name)
}

// Bind returns accessors for an option without writing anything: the getter reads
// through the parent chain until the setter is invoked, after which this node shadows
// its parent for the option.
func (n *Node) Bind(name string) (Setter, Getter) {
	setter := func(value interface{}) {
		n.Set(name, value)
	}

	getter := func() (interface{}, bool) {
		return n.Get(name)
	}

	return setter, getter
}

// Bool reads an option coerced to a boolean. Unset options read as false.
func (n *Node) Bool(name string) bool {
	value, _ := n.Get(name)
	return cast.ToBool(value)
}

// String reads an option coerced to a string. Unset options read as the empty string.
func (n *Node) String(name string) string {
	value, _ := n.Get(name)
	return cast.ToString(value)
}

// Int reads an option coerced to an integer. Unset options read as zero.
func (n *Node) Int(name string) int {
	value, _ := n.Get(name)
	return cast.ToInt(value)
}
