// Package cliconf loads settings for the agentenv CLI. Library callers
// pass options directly; the CLI layers defaults, an optional JSON file
// under the user's config dir, and AGENTENV_* environment variables, in
// that order of increasing priority.
package cliconf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the CLI settings.
type Config struct {
	// MaxDepth caps the ancestor walk. Clamped to [0, 10].
	MaxDepth int `koanf:"max_depth"`
	// JSON makes every command emit JSON instead of human output.
	JSON bool `koanf:"json"`
	// NoColor disables colored output unconditionally.
	NoColor bool `koanf:"no_color"`
}

const (
	defaultMaxDepth = 10
	envPrefix       = "AGENTENV_"
)

// Path returns the config file location, ~/.config/agentenv/config.json.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "agentenv", "config.json")
}

// Load reads the configuration. A missing file is not an error; a value
// out of range is clamped rather than rejected, since a misconfigured
// depth should degrade detection, not break it.
func Load() (*Config, error) {
	return load(Path())
}

func load(path string) (*Config, error) {
	k := koanf.New(".")

	k.Set("max_depth", defaultMaxDepth)
	k.Set("json", false)
	k.Set("no_color", false)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), json.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}
	if cfg.MaxDepth > defaultMaxDepth {
		cfg.MaxDepth = defaultMaxDepth
	}
	return &cfg, nil
}

// envTransform maps AGENTENV_MAX_DEPTH to max_depth.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}
