package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvDB       = "TUI2048_DB"
	EnvLogLevel = "TUI2048_LOG_LEVEL"
	EnvLogFile  = "TUI2048_LOG_FILE"
	EnvSeed     = "TUI2048_SEED"
)

// SourceEmbedded marks a config built from the embedded defaults.
const SourceEmbedded = "embedded"

// Load loads the configuration and applies environment overrides.
// Search order: customPath -> ~/.tui2048/config.yaml -> ./configs/tui2048.yaml -> embedded default.
// Variables from ./.env are used when the process environment does not set them.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := applyEnv(&cfg, envLookup(".env")); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	candidates := []string{userConfigPath(), filepath.Join("configs", "tui2048.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultConfig()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Source = path
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = DefaultConfig() // Fallback to hardcoded if embed fails
	}
	cfg.Source = SourceEmbedded
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui2048", "config.yaml")
}

// envLookup resolves variables from the process environment first and then
// from the dotenv file at path. Empty values count as unset. A missing file
// is ignored.
func envLookup(path string) func(string) (string, bool) {
	fileVars, err := godotenv.Read(path)
	if err != nil {
		fileVars = nil
	}
	return func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDB); ok && v != "" {
		cfg.Storage.Path = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.Log.File = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Game.Seed = seed
	}
	return nil
}
