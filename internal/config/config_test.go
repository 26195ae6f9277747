package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 250*time.Millisecond, cfg.DebounceDuration())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slidekit.yaml")
	body := "verbose: true\noutput:\n  format: json\n  color: false\nwatch:\n  debounce: 1s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, time.Second, cfg.DebounceDuration())
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("SLIDEKIT_OUTPUT_FORMAT overrides file value", func(t *testing.T) {
		t.Setenv("SLIDEKIT_OUTPUT_FORMAT", "json")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("SLIDEKIT_VERBOSE parses booleans", func(t *testing.T) {
		t.Setenv("SLIDEKIT_VERBOSE", "true")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
	})

	t.Run("invalid boolean is ignored", func(t *testing.T) {
		t.Setenv("SLIDEKIT_VERBOSE", "not-a-bool")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.False(t, cfg.Verbose)
	})

	t.Run("invalid format rejected", func(t *testing.T) {
		t.Setenv("SLIDEKIT_OUTPUT_FORMAT", "xml")

		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("invalid debounce rejected", func(t *testing.T) {
		t.Setenv("SLIDEKIT_WATCH_DEBOUNCE", "soon")

		_, err := Load("")
		assert.Error(t, err)
	})
}
