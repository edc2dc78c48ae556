package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/xword/internal/game"
	"github.com/dyluth/xword/pkg/puz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xword.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `version: "1.0"
display:
  color: false
  show_numbers: true
  reveal: true
session:
  seed: saved
  start_direction: down
`)

	config, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "1.0", config.Version)
	assert.False(t, *config.Display.Color)
	assert.True(t, *config.Display.ShowNumbers)
	assert.True(t, config.Display.Reveal)
	assert.Equal(t, "saved", config.Session.Seed)
	assert.Equal(t, game.Options{Seed: game.SeedSaved, Direction: puz.Down}, config.GameOptions())
}

func TestLoad_AppliesDefaults(t *testing.T) {
	configPath := writeConfig(t, `version: "1.0"`)

	config, err := Load(configPath)
	require.NoError(t, err)
	assert.True(t, *config.Display.Color)
	assert.True(t, *config.Display.ShowNumbers)
	assert.False(t, config.Display.Reveal)
	assert.Equal(t, "empty", config.Session.Seed)
	assert.Equal(t, "across", config.Session.StartDirection)
	assert.Equal(t, game.Options{Seed: game.SeedEmpty, Direction: puz.Across}, config.GameOptions())
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/xword.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `version: "1.0"
display:
  - this is invalid
    yaml syntax
`)

	config, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		config  XwordConfig
		wantErr string
	}{
		{
			name:    "unsupported version",
			config:  XwordConfig{Version: "2.0"},
			wantErr: "unsupported version: 2.0",
		},
		{
			name:    "missing version",
			config:  XwordConfig{},
			wantErr: "unsupported version",
		},
		{
			name:    "unknown seed",
			config:  XwordConfig{Version: "1.0", Session: &SessionConfig{Seed: "solution"}},
			wantErr: "session.seed: unknown seed mode",
		},
		{
			name:    "unknown start direction",
			config:  XwordConfig{Version: "1.0", Session: &SessionConfig{StartDirection: "diagonal"}},
			wantErr: "invalid value: diagonal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDefault(t *testing.T) {
	config := Default()
	assert.Equal(t, "1.0", config.Version)
	assert.True(t, *config.Display.Color)
	assert.Equal(t, "empty", config.Session.Seed)
}

func TestResolve(t *testing.T) {
	t.Run("flag path wins over environment", func(t *testing.T) {
		flagPath := writeConfig(t, "version: \"1.0\"\nsession:\n  start_direction: down\n")
		envPath := writeConfig(t, "version: \"1.0\"\n")
		t.Setenv(EnvVar, envPath)

		config, err := Resolve(flagPath)
		require.NoError(t, err)
		assert.Equal(t, "down", config.Session.StartDirection)
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv(EnvVar, writeConfig(t, "version: \"1.0\"\nsession:\n  seed: saved\n"))

		config, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, "saved", config.Session.Seed)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Resolve(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})

	t.Run("missing default file falls back to defaults", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())

		config, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})
}
