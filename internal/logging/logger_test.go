package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, nil, false)

	l.Info("converting %s", "a.mkv")
	l.Warn("skip")
	l.Error("boom")
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "converting a.mkv")
	assert.Contains(t, out, "skip")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "hidden", "debug suppressed without verbose")
}

func TestLogger_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, nil, true)

	l.Debug("stream detail")
	assert.Contains(t, buf.String(), "stream detail")
}

func TestLogger_ExtraSinkGetsJSON(t *testing.T) {
	var console, file bytes.Buffer
	l := newWithWriter(&console, &file, false)

	l.Info("hello")

	assert.Contains(t, console.String(), "hello")
	// The extra sink receives raw zerolog JSON lines.
	assert.True(t, strings.HasPrefix(file.String(), "{"))
	assert.Contains(t, file.String(), `"message":"hello"`)
}
