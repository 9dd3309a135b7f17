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
	path := filepath.Join(t.TempDir(), "parsec.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[log]
verbosity = 2
file = " parsec.log "

[lsp]
extensions = ["kv", ".conf", " "]

[watch]
interval = "250ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Log = LogConfig{Verbosity: 2, File: "parsec.log"}
	want.LSP.Extensions = []string{".kv", ".conf"}
	want.Watch.Interval = 250 * time.Millisecond
	assert.Equal(t, want, cfg)
}

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[lsp]\nname = \"kvls\"\n"))
	require.NoError(t, err)

	want := Default()
	want.LSP.Name = "kvls"
	assert.Equal(t, want, cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":            "[log\n",
		"unknown key":       "[log]\nlevel = 3\n",
		"bad interval":      "[watch]\ninterval = \"soon\"\n",
		"negative interval": "[watch]\ninterval = \"-1s\"\n",
		"no extensions":     "[lsp]\nextensions = []\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("[log]\nverbosity = 1\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Log.Verbosity)
}
