package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"", log.InfoLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorContains(t, err, `unknown log level "verbose"`)
}

// restore puts the global logger back after a test replaced it.
func restore(t *testing.T) {
	t.Helper()
	saved := Logger
	t.Cleanup(func() {
		require.NoError(t, Close())
		Logger = saved
	})
}

func TestConfigure_File(t *testing.T) {
	restore(t)

	path := filepath.Join(t.TempDir(), "minitorch.log")
	require.NoError(t, Configure("debug", path))
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	WithPrefix("arch").Debug("building", "layer", "linear")
	Error("command failed", "err", "boom")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "building")
	assert.Contains(t, string(data), "arch")
	assert.Contains(t, string(data), "command failed")
}

func TestConfigure_ClosesPreviousFile(t *testing.T) {
	restore(t)
	dir := t.TempDir()

	require.NoError(t, Configure("info", filepath.Join(dir, "first.log")))
	first := logFile
	require.NotNil(t, first)

	require.NoError(t, Configure("info", filepath.Join(dir, "second.log")))
	assert.NotSame(t, first, logFile)
	_, err := first.WriteString("late\n")
	assert.ErrorIs(t, err, os.ErrClosed)

	second := logFile
	require.NoError(t, Configure("info", ""))
	assert.Nil(t, logFile)
	_, err = second.WriteString("late\n")
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestClose(t *testing.T) {
	restore(t)

	require.NoError(t, Configure("warn", filepath.Join(t.TempDir(), "x.log")))
	f := logFile

	require.NoError(t, Close())
	assert.Nil(t, logFile)
	assert.Equal(t, log.WarnLevel, Logger.GetLevel())
	_, err := f.WriteString("late\n")
	assert.ErrorIs(t, err, os.ErrClosed)
	require.NoError(t, Close())
}

func TestConfigure_BadLevel(t *testing.T) {
	restore(t)
	saved := Logger

	assert.Error(t, Configure("loud", ""))
	assert.Same(t, saved, Logger)
}
