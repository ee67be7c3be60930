package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, int64(1), cfg.MaxConcurrent)
	assert.Equal(t, 4, cfg.MaxPerExperience)
	assert.Equal(t, 2, cfg.SelectionRetries)
	assert.Equal(t, 60*time.Second, cfg.CompileTimeout())
	assert.Equal(t, 5*time.Minute, cfg.RunTimeout())
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `{"port": 9000, "model": "gemini-2.0-pro", "max_concurrent": 2}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "gemini-2.0-pro", cfg.Model)
	assert.Equal(t, int64(2), cfg.MaxConcurrent)
	// Untouched fields still get defaults
	assert.Equal(t, 16000, cfg.MaxPromptChars)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"api_key": "from-file", "port": 9000}`)
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_BadJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidate_Ranges(t *testing.T) {
	path := writeConfig(t, `{"port": 70000}`)
	_, err := Load(path)
	assert.Error(t, err)

	path = writeConfig(t, `{"max_per_experience": 99}`)
	_, err = Load(path)
	assert.Error(t, err)
}
