package logger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mreqlib/mreq/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		"warn":    logger.WARN,
		"warning": logger.WARN,
		"Error":   logger.ERROR,
	}
	for in, want := range cases {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseLevelUnknownDefaultsToInfo(t *testing.T) {
	got, err := logger.ParseLevel("bogus")
	require.Error(t, err)
	require.Equal(t, logger.INFO, got)
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", logger.DEBUG.String())
	require.Equal(t, "INFO", logger.INFO.String())
	require.Equal(t, "WARN", logger.WARN.String())
	require.Equal(t, "ERROR", logger.ERROR.String())
}

func TestWithFieldAddsContextWithoutMutatingParent(t *testing.T) {
	base := logger.New()
	scoped := base.WithField("topic", "sensor.reading")

	require.NotSame(t, base, scoped)
}

func TestWithFieldsMergesMultiplePairs(t *testing.T) {
	l := logger.New().WithFields("topic", "demo", "token", 3)
	require.NotNil(t, l)
}

func TestSetLevelCallsBelowThresholdDoNotPanic(t *testing.T) {
	l := logger.New()
	l.SetLevel(logger.WARN)

	// Debug/Info below WARN must not panic and must be no-ops; there is
	// no public way to inspect the underlying writer, so this only
	// guards against a panic in the suppressed path.
	require.NotPanics(t, func() {
		l.Debug("ignored")
		l.Info("ignored")
		l.Warn("emitted")
		l.Error("emitted")
	})
}

func TestPackageLevelWithFieldUsesGlobalLogger(t *testing.T) {
	scoped := logger.WithField("component", "mreq")
	require.NotNil(t, scoped)
}

func TestInfoWithSpacedStringValueDoesNotPanic(t *testing.T) {
	// formatValue is unexported; exercised indirectly through a real
	// log call to confirm it doesn't panic on the types the bus logs
	// (strings with spaces, errors).
	l := logger.New()
	require.NotPanics(t, func() {
		l.Info("message with spaces", "key", "value with spaces")
	})
}

func TestInfoWithRegistryFieldsDoesNotPanic(t *testing.T) {
	// Indirect smoke test: WithField + Info must not error or panic for
	// the key/value shapes registry.go and topic.go actually pass.
	l := logger.New().WithField("component", "mreq")
	require.NotPanics(t, func() {
		l.Info("registered topic", "topic", "demo", "message_id", uint64(12345))
	})
}

