package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "MATHTRADE_"

// cliConfig holds knobs SPEC_FULL.md's CLI layer owns but spec.md itself
// never names: a default algorithm and log level a deployment can override
// without touching a command-line invocation. Everything spec.md does
// name (priority scheme, option booleans/integers) stays in option.Store,
// sourced only from the want-file's own "#!" lines or explicit flags —
// never from this config layer.
type cliConfig struct {
	Algorithm string `koanf:"algorithm"`
	LogLevel  string `koanf:"log_level"`
}

// loadConfig composes defaults, an optional YAML file (first of
// ./mathtrade.yaml, ~/.config/mathtrade/config.yaml), and MATHTRADE_*
// environment variables, in that increasing order of precedence.
func loadConfig() (cliConfig, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"algorithm": "successive-shortest-paths",
		"log_level": "info",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return cliConfig{}, fmt.Errorf("mathtrade: loading config defaults: %w", err)
	}

	for _, path := range configSearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cliConfig{}, fmt.Errorf("mathtrade: reading config file %s: %w", path, err)
		}

		break
	}

	envLoader := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envLoader, nil); err != nil {
		return cliConfig{}, fmt.Errorf("mathtrade: reading environment: %w", err)
	}

	var cfg cliConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return cliConfig{}, fmt.Errorf("mathtrade: unmarshaling config: %w", err)
	}

	return cfg, nil
}

func configSearchPaths() []string {
	paths := []string{"mathtrade.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mathtrade", "config.yaml"))
	}

	return paths
}
