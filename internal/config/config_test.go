package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2, cfg.Indent)
	assert.True(t, cfg.Color)
	assert.Empty(t, cfg.RequireSchema)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "indent: 4\ncolor: false\nrequire-schema: \">= 0.1.0\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Indent)
	assert.False(t, cfg.Color)
	assert.Equal(t, ">= 0.1.0", cfg.RequireSchema)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "require-schema: \"< 1.0.0\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Indent)
	assert.True(t, cfg.Color)
	assert.Equal(t, "< 1.0.0", cfg.RequireSchema)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load(DefaultFile)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "indent: [\n"},
		{"zero indent", "indent: 0\n"},
		{"negative indent", "indent: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
