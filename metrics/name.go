package metrics

import (
	"fmt"
	"strings"
)

// nameKind discriminates the shapes a metric name component can take.
type nameKind int

const (
	nameEmpty nameKind = iota
	nameToken
	namePath
)

// Name is one metric name component: absent, a single token, or an ordered path of
// tokens. The zero value is the absent component, which contributes nothing when
// formatted. A path with zero elements is likewise equivalent to an absent component,
// not an error.
type Name struct {
	kind   nameKind
	token  string
	tokens []string
}

// Token creates a single-token name component.
func Token(token string) Name {
	return Name{kind: nameToken, token: token}
}

// Path creates an ordered multi-token name component.
func Path(tokens ...string) Name {
	return Name{kind: namePath, tokens: tokens}
}

// Flatten expands the component into its ordered token sequence. Absent components
// flatten to an empty sequence; empty-string tokens are preserved, since dropping them
// is a join-time policy.
func (n Name) Flatten() []string {
	switch n.kind {
	case nameToken:
		return []string{n.token}
	case namePath:
		return n.tokens
	default:
		return nil
	}
}

// Reverse returns a component whose token sequence is reversed. Reversing an absent or
// single-token component is a no-op.
func (n Name) Reverse() Name {
	flattened := n.Flatten()
	reversed := make([]string, len(flattened))

	for idx, token := range flattened {
		reversed[len(flattened)-1-idx] = token
	}

	return Path(reversed...)
}

// IsEmpty indicates whether the component flattens to zero tokens.
func (n Name) IsEmpty() bool {
	return len(n.Flatten()) == 0
}

// Join flattens every component in order into one token sequence and joins it with the
// delimiter. When skipEmpty is true, tokens equal to the empty string are dropped
// before joining, so a present-but-empty component is indistinguishable from an absent
// one in the output.
func Join(delimiter string, skipEmpty bool, components ...Name) string {
	var tokens []string

	for _, component := range components {
		for _, token := range component.Flatten() {
			if skipEmpty && token == "" {
				continue
			}
			tokens = append(tokens, token)
		}
	}

	return strings.Join(tokens, delimiter)
}

// nameFromValue converts a configuration-stored value into a Name. Strings and string
// slices are accepted alongside Name itself; any other shape is a caller contract
// violation surfaced as an error at formatting time.
func nameFromValue(value interface{}) (Name, error) {
	switch v := value.(type) {
	case nil:
		return Name{}, nil
	case Name:
		return v, nil
	case string:
		return Token(v), nil
	case []string:
		return Path(v...), nil
	case []interface{}:
		tokens := make([]string, len(v))
		for idx, element := range v {
			token, ok := element.(string)
			if !ok {
				return Name{}, fmt.Errorf(
					"name: non-string token in name component: idx=%d value=%v",
					idx,
					element,
				)
			}
			tokens[idx] = token
		}
		return Path(tokens...), nil
	default:
		return Name{}, fmt.Errorf(
			"name: component must be absent, a string, or a string sequence: value=%v",
			value,
		)
	}
}

// hostFromValue derives the host name component: a string-shaped dotted hostname is
// split on "." into a path, while an already path-shaped value passes through
// unchanged.
func hostFromValue(value interface{}) (Name, error) {
	name, err := nameFromValue(value)
	if err != nil {
		return Name{}, err
	}

	if name.kind == nameToken {
		return Path(strings.Split(name.token, ".")...), nil
	}

	return name, nil
}
