package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinScalarAndPathEquivalence(t *testing.T) {
	// A single token and the equivalent one-element path format identically.
	scalar := Join(".", true, Token("global"), Token("prefix"), Token("metric"))
	path := Join(".", true, Path("global"), Path("prefix"), Path("metric"))

	assert.Equal(t, "global.prefix.metric", scalar)
	assert.Equal(t, scalar, path)
}

func TestJoinFlattensMixedShapes(t *testing.T) {
	formatted := Join(".", true,
		Token("global"),
		Path("host", "example", "com"),
		Name{},
		Token("metric"),
	)

	assert.Equal(t, "global.host.example.com.metric", formatted)
}

func TestJoinSkipsEmptyTokens(t *testing.T) {
	// Empty components and empty tokens contribute nothing.
	formatted := Join(".", true,
		Token(""),
		Path(),
		Path("", "prefix", ""),
		Token("metric"),
	)

	assert.Equal(t, "prefix.metric", formatted)
}

func TestJoinPreservesEmptyTokensWhenRequested(t *testing.T) {
	formatted := Join(".", false, Token(""), Token("metric"))

	assert.Equal(t, ".metric", formatted)
}

func TestJoinCustomDelimiter(t *testing.T) {
	formatted := Join("_", true, Token("a"), Path("b", "c"))

	assert.Equal(t, "a_b_c", formatted)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []string{"com", "example", "host"}, Path("host", "example", "com").Reverse().Flatten())
	assert.Equal(t, []string{"solo"}, Token("solo").Reverse().Flatten())
	assert.Empty(t, Name{}.Reverse().Flatten())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Name{}.IsEmpty())
	assert.True(t, Path().IsEmpty())
	assert.False(t, Token("").IsEmpty())
	assert.False(t, Token("a").IsEmpty())
}

func TestNameFromValue(t *testing.T) {
	name, err := nameFromValue("metric")
	require.NoError(t, err)
	assert.Equal(t, []string{"metric"}, name.Flatten())

	name, err = nameFromValue([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, name.Flatten())

	name, err = nameFromValue([]interface{}{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, name.Flatten())

	name, err = nameFromValue(nil)
	require.NoError(t, err)
	assert.True(t, name.IsEmpty())

	name, err = nameFromValue(Path("x", "y"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, name.Flatten())
}

func TestNameFromValueRejectsMalformedShapes(t *testing.T) {
	_, err := nameFromValue(42)
	assert.Error(t, err)

	_, err = nameFromValue([]interface{}{"a", 1})
	assert.Error(t, err)
}

func TestHostFromValueSplitsDottedStrings(t *testing.T) {
	host, err := hostFromValue("host.example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "example", "com"}, host.Flatten())

	host, err = hostFromValue(Token("host.example.com"))
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "example", "com"}, host.Flatten())
}

func TestHostFromValuePassesPathsThrough(t *testing.T) {
	host, err := hostFromValue(Path("host.example", "com"))
	require.NoError(t, err)
	assert.Equal(t, []string{"host.example", "com"}, host.Flatten())

	host, err = hostFromValue([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, host.Flatten())
}
