package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetWriterForAll(buf)
	SetColor(false)
	t.Cleanup(func() {
		SetWriterForAll(os.Stdout)
		SetColor(true)
		SetVerbose(false)
	})
	return buf
}

func TestDebugRequiresVerbose(t *testing.T) {
	buf := withBuffer(t)

	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "DEBUG shown 2")
}

func TestLevelsAndFormat(t *testing.T) {
	buf := withBuffer(t)

	Info("hello %s", "world")
	Warn("careful")
	Error("broken: %v", "x")

	out := buf.String()
	assert.Contains(t, out, "INFO  hello world")
	assert.Contains(t, out, "WARN  careful")
	assert.Contains(t, out, "ERROR broken: x")
	assert.NotContains(t, out, ColorReset)
}

func TestColorOutput(t *testing.T) {
	buf := withBuffer(t)
	SetColor(true)

	Error("boom")
	assert.Contains(t, buf.String(), ColorRed+"ERROR"+ColorReset)
}

func TestAddWriterForAll(t *testing.T) {
	first := withBuffer(t)
	second := new(bytes.Buffer)
	AddWriterForAll(second)

	Info("both")
	assert.Contains(t, first.String(), "both")
	assert.Contains(t, second.String(), "both")
}

func TestFatalExits(t *testing.T) {
	buf := withBuffer(t)
	code := -1
	std.mu.Lock()
	std.exit = func(c int) { code = c }
	std.mu.Unlock()
	t.Cleanup(func() {
		std.mu.Lock()
		std.exit = os.Exit
		std.mu.Unlock()
	})

	Fatal("bye")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "FATAL bye")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
