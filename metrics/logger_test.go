package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNameEndToEnd(t *testing.T) {
	resetGlobalState()
	SetGlobalPrefix(Token("globalprefix"))

	logger, _ := newRecordingLogger()
	logger.SetPrefix(Token("testprefix"))

	formatted, err := logger.FormatName(Token("metric"))
	require.NoError(t, err)
	assert.Equal(t, "globalprefix.testprefix.metric", formatted)
}

func TestFormatNamePrependHost(t *testing.T) {
	resetGlobalState()
	SetGlobalPrefix(Token("globalprefix"))
	SetHost(Token("host.example.com"))

	logger, _ := newRecordingLogger()
	logger.SetPrefix(Token("testprefix"))
	logger.SetPrependHost(true)

	formatted, err := logger.FormatName(Token("metric"))
	require.NoError(t, err)
	assert.Equal(t, "globalprefix.host.example.com.testprefix.metric", formatted)
}

func TestFormatNamePrependHostReverse(t *testing.T) {
	resetGlobalState()
	SetGlobalPrefix(Token("globalprefix"))
	SetHost(Token("host.example.com"))

	logger, _ := newRecordingLogger()
	logger.SetPrefix(Token("testprefix"))
	logger.SetPrependHost(true)
	logger.SetPrependHostReverse(true)

	formatted, err := logger.FormatName(Token("metric"))
	require.NoError(t, err)
	assert.Equal(t, "globalprefix.com.example.host.testprefix.metric", formatted)
}

func TestFormatNameHostDisabled(t *testing.T) {
	resetGlobalState()
	SetHost(Token("host.example.com"))

	logger, _ := newRecordingLogger()
	logger.SetPrefix(Token("testprefix"))

	// The host contributes nothing unless prepending is enabled, even when reversal
	// is requested.
	logger.SetPrependHostReverse(true)

	formatted, err := logger.FormatName(Token("metric"))
	require.NoError(t, err)
	assert.Equal(t, "testprefix.metric", formatted)
}

func TestFormatNameListShapedHost(t *testing.T) {
	resetGlobalState()

	logger, _ := newRecordingLogger()
	logger.SetPrefix(Token("testprefix"))
	logger.SetPrependHost(true)
	logger.SetHost(Path("host", "example", "com"))

	formatted, err := logger.FormatName(Token("metric"))
	require.NoError(t, err)
	assert.Equal(t, "host.example.com.testprefix.metric", formatted)
}

func TestFormatNameEmptyComponentsDropped(t *testing.T) {
	resetGlobalState()
	SetGlobalPrefix(Path())

	logger, _ := newRecordingLogger()
	logger.SetPrefix(Token(""))

	formatted, err := logger.FormatName(Token("metric"))
	require.NoError(t, err)
	assert.Equal(t, "metric", formatted)
}

func TestFormatNameInstanceOverrideDoesNotLeak(t *testing.T) {
	resetGlobalState()
	SetPrependHost(true)
	SetHost(Token("host.example.com"))

	overridden, _ := newRecordingLogger()
	overridden.SetPrefix(Token("a"))
	overridden.SetPrependHost(false)

	inherited, _ := newRecordingLogger()
	inherited.SetPrefix(Token("b"))

	formatted, err := overridden.FormatName(Token("metric"))
	require.NoError(t, err)
	assert.Equal(t, "a.metric", formatted)

	formatted, err = inherited.FormatName(Token("metric"))
	require.NoError(t, err)
	assert.Equal(t, "host.example.com.b.metric", formatted)
}

func TestFormatNameMalformedHostValue(t *testing.T) {
	resetGlobalState()

	logger, _ := newRecordingLogger()
	logger.SetPrependHost(true)
	logger.Config().Set(OptHost, 42)

	_, err := logger.FormatName(Token("metric"))
	assert.Error(t, err)
}

func TestGaugeForwardsFormattedName(t *testing.T) {
	resetGlobalState()
	SetGlobalPrefix(Token("globalprefix"))

	logger, sink := newRecordingLogger()
	logger.SetPrefix(Token("testprefix"))

	require.NoError(t, logger.Gauge(Token("metric"), 10))

	recorded := sink.recorded()
	require.Len(t, recorded, 1)
	assert.Equal(t, "gauge", recorded[0].kind)
	assert.Equal(t, "globalprefix.testprefix.metric", recorded[0].name)
	assert.Equal(t, 10.0, recorded[0].value)
}

func TestCounterAlwaysSendsWithoutRate(t *testing.T) {
	resetGlobalState()

	logger, sink := newRecordingLogger()

	for i := 0; i < 100; i++ {
		require.NoError(t, logger.Counter(Token("metric"), 1))
	}

	recorded := sink.recorded()
	require.Len(t, recorded, 100)
	for _, metric := range recorded {
		_, ok := metric.rate.Value()
		assert.False(t, ok, "unsampled counters must carry no rate annotation")
	}
}

func TestSampledCounterValidatesRate(t *testing.T) {
	resetGlobalState()

	logger, sink := newRecordingLogger()

	assert.Equal(t, ErrSampleRate, logger.SampledCounter(Token("metric"), 1, -0.1))
	assert.Equal(t, ErrSampleRate, logger.SampledCounter(Token("metric"), 1, 1.1))
	assert.Empty(t, sink.recorded(), "invalid rates must fail before any transmission")
}

func TestSampledCounterRateZeroNeverSends(t *testing.T) {
	resetGlobalState()

	logger, sink := newRecordingLogger()

	for i := 0; i < 1000; i++ {
		require.NoError(t, logger.SampledCounter(Token("metric"), 1, 0.0))
	}

	assert.Empty(t, sink.recorded())
}

func TestSampledCounterRateOneAlwaysSendsAnnotated(t *testing.T) {
	resetGlobalState()

	logger, sink := newRecordingLogger()

	for i := 0; i < 100; i++ {
		require.NoError(t, logger.SampledCounter(Token("metric"), 1, 1.0))
	}

	recorded := sink.recorded()
	require.Len(t, recorded, 100)
	for _, metric := range recorded {
		rate, ok := metric.rate.Value()
		require.True(t, ok)
		assert.Equal(t, 1.0, rate)
	}
}

func TestSampledCounterExpectation(t *testing.T) {
	resetGlobalState()

	logger, sink := newRecordingLogger()

	// Statistical property: the sent count converges to N * rate. The bounds are
	// loose enough (10 sigma) to make a flake practically impossible.
	const n = 10000
	const rate = 0.5

	for i := 0; i < n; i++ {
		require.NoError(t, logger.SampledCounter(Token("metric"), 1, rate))
	}

	sent := len(sink.recorded())
	assert.Greater(t, sent, 4500)
	assert.Less(t, sent, 5500)
}

func TestTimerForwardsValue(t *testing.T) {
	resetGlobalState()

	logger, sink := newRecordingLogger()

	require.NoError(t, logger.Timer(Token("metric"), 123.5))

	recorded := sink.recorded()
	require.Len(t, recorded, 1)
	assert.Equal(t, "timer", recorded[0].kind)
	assert.Equal(t, 123.5, recorded[0].value)
}
