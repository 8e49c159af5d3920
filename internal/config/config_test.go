package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "remindcal.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.FileExists(t, path)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remindcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("week_start: Sunday\nmouse: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, time.Sunday, cfg.FirstWeekday())
	assert.False(t, cfg.Mouse)
	assert.True(t, cfg.AltScreen)
	assert.Equal(t, DefaultRemindersFile, cfg.RemindersFile)
	assert.Equal(t, DefaultProductID, cfg.ICSProductID)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remindcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("week_start: [\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{WeekStart: "friday"}
	cfg.Normalize()
	assert.Equal(t, "monday", cfg.WeekStart)
	assert.Equal(t, time.Monday, cfg.FirstWeekday())
	assert.Equal(t, DefaultRemindersFile, cfg.RemindersFile)
	assert.Equal(t, "info", cfg.LogLevel)
}
