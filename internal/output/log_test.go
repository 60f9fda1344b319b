package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T, cfg LogConfig) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg.Writer = &buf
	cfg.NoColor = true
	SetupLogging(cfg)
	t.Cleanup(func() { SetupLogging(LogConfig{}) })
	return &buf
}

func TestSetupLogging_DefaultHidesDebug(t *testing.T) {
	buf := captureLog(t, LogConfig{})
	Debug("hidden-msg")
	Info("shown-msg", "component", "Button")

	out := buf.String()
	assert.NotContains(t, out, "hidden-msg")
	assert.Contains(t, out, "shown-msg")
	assert.Contains(t, out, "component=Button")
}

func TestSetupLogging_VerboseShowsDebug(t *testing.T) {
	buf := captureLog(t, LogConfig{Verbose: true})
	Debug("verbose-msg")
	assert.Contains(t, buf.String(), "verbose-msg")
}

func TestWarnAndError(t *testing.T) {
	buf := captureLog(t, LogConfig{})
	Warn("careful")
	Error("broken")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "ERRO")
	assert.Contains(t, out, "broken")
}

func TestTimer(t *testing.T) {
	buf := captureLog(t, LogConfig{Verbose: true})

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tm := &Timer{label: "batch", start: base, now: func() time.Time { return base.Add(1500 * time.Millisecond) }}

	assert.Equal(t, 1500*time.Millisecond, tm.Stop())
	assert.Contains(t, buf.String(), "op=batch")
	assert.Contains(t, buf.String(), "1.5s")
}
