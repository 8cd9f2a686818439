package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsZeroValueNoError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kyarorc.yaml")
	contents := "prompt: \"> \"\nbanner: \"hi\"\nno_color: true\nhistory_path: /tmp/hist\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "hi", cfg.Banner)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "/tmp/hist", cfg.HistoryPath)
}

func TestLoad_InvalidYamlIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kyarorc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
