package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	t.Setenv("ENV", "")
	prev := GetLogger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(NewSlog(&buf, InfoLevel, false))

	SetLogger(nil) // ignored
	Debug("hidden")
	Info("info")
	Warn("warn")
	Error("error")
	With("queue", "q1").Info("child")

	records := decodeLines(t, &buf)
	require.Len(t, records, 4)
	assert.Equal(t, "info", records[0]["msg"])
	assert.Equal(t, "warn", records[1]["msg"])
	assert.Equal(t, "error", records[2]["msg"])
	assert.Equal(t, "q1", records[3]["queue"])

	SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, GetLogger().Level())
	Debug("shown")
	assert.Len(t, decodeLines(t, &buf), 5)
}
