package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("prod", "warn", &buf)

	l.Infof("hidden %d", 1)
	require.Zero(t, buf.Len())

	l.WithField("session", "abc").Warnf("shown %d", 2)
	require.Contains(t, buf.String(), `"message":"shown 2"`)
	require.Contains(t, buf.String(), `"session":"abc"`)
}

func TestUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("prod", "chatty", &buf)

	l.Infof("hidden")
	l.Errorf("boom")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "boom")
}
