// Package config loads parsec.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultFile is read when no configuration file is named explicitly.
const DefaultFile = "parsec.toml"

type Config struct {
	Log   LogConfig
	LSP   LSPConfig
	Watch WatchConfig
}

type LogConfig struct {
	// Verbosity follows commonlog: 0 logs errors only, each step adds a level.
	Verbosity int
	// File is the log destination; empty means stderr.
	File string
}

type LSPConfig struct {
	Name       string
	Extensions []string
}

type WatchConfig struct {
	Interval time.Duration
}

func Default() Config {
	return Config{
		Log:   LogConfig{Verbosity: 0},
		LSP:   LSPConfig{Name: "parsec", Extensions: []string{".kv"}},
		Watch: WatchConfig{Interval: time.Second},
	}
}

type fileConfig struct {
	Log struct {
		Verbosity int    `toml:"verbosity"`
		File      string `toml:"file"`
	} `toml:"log"`
	LSP struct {
		Name       string   `toml:"name"`
		Extensions []string `toml:"extensions"`
	} `toml:"lsp"`
	Watch struct {
		Interval string `toml:"interval"`
	} `toml:"watch"`
}

// Load reads path on top of the defaults. An empty path reads DefaultFile
// when it exists and returns the defaults otherwise.
func Load(path string) (Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		path = DefaultFile
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}
	return apply(Default(), raw, meta)
}

func apply(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	if meta.IsDefined("log", "verbosity") {
		cfg.Log.Verbosity = raw.Log.Verbosity
	}
	if meta.IsDefined("log", "file") {
		cfg.Log.File = strings.TrimSpace(raw.Log.File)
	}

	if meta.IsDefined("lsp", "name") {
		if name := strings.TrimSpace(raw.LSP.Name); name != "" {
			cfg.LSP.Name = name
		}
	}
	if meta.IsDefined("lsp", "extensions") {
		exts, err := normalizeExtensions(raw.LSP.Extensions)
		if err != nil {
			return Config{}, err
		}
		cfg.LSP.Extensions = exts
	}

	if meta.IsDefined("watch", "interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Watch.Interval))
		if err != nil {
			return Config{}, fmt.Errorf("parse watch.interval: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("watch.interval must be positive, got %s", d)
		}
		cfg.Watch.Interval = d
	}

	return cfg, nil
}

func normalizeExtensions(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, ext := range in {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	if len(out) == 0 {
		return nil, errors.New("lsp.extensions must name at least one extension")
	}
	return out, nil
}
