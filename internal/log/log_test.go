package log

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelWarn)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})

	Info("hidden")
	Warn("shown", "path", "remind.json")
	Error("failed", errors.New("boom"), "key", "2024-3-5")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown path=remind.json")
	assert.Contains(t, out, "[ERROR] failed err=boom key=2024-3-5")
}

func TestFormatKVsQuotesText(t *testing.T) {
	assert.Equal(t, ` text="Call mom" count=2`, formatKVs("text", "Call mom", "count", 2))
	assert.Equal(t, " a=1", formatKVs("a", 1, "dangling"))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
