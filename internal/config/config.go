// Package config provides hierarchical configuration management for calclog
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.calclog/config.yml) > user config
// (~/.config/calclog/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment variable overrides
// (e.g. CALCLOG_OUTPUT, CALCLOG_WATCH_DEBOUNCE_MS).
const envPrefix = "CALCLOG_"

// Configuration represents the calclog CLI tool configuration.
type Configuration struct {
	// Project is the display name used in demo output headings.
	Project string `koanf:"project"`

	// Repo is the repository directory the changelog is generated from.
	Repo string `koanf:"repo"`

	// Output is the changelog file path, relative to the repo root
	// unless absolute.
	Output string `koanf:"output"`

	// CalcName is the name given to calculators created by the calc command.
	CalcName string `koanf:"calc_name"`

	// WatchDebounceMs is the debounce window for changelog --watch, in
	// milliseconds. Ref updates arriving within the window coalesce into
	// a single regeneration.
	WatchDebounceMs int `koanf:"watch_debounce_ms"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .calclog/config.yml). Used by tests.
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	userPath, err := UserConfigPath()
	if err == nil {
		if err := loadYAMLFile(k, userPath, "user"); err != nil {
			return nil, err
		}
	}

	projectPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectPath = opts.ProjectConfigPath
	}
	if err := loadYAMLFile(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadYAMLFile loads a YAML config file if it exists.
// A missing file is not an error; layers are optional.
func loadYAMLFile(k *koanf.Koanf, path, configType string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", configType, path, err)
	}
	return nil
}

// envTransform maps CALCLOG_WATCH_DEBOUNCE_MS to watch_debounce_ms.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// validate rejects configuration values the tool cannot work with.
func validate(cfg *Configuration) error {
	if cfg.Output == "" {
		return fmt.Errorf("config: output must not be empty")
	}
	if cfg.WatchDebounceMs < 0 {
		return fmt.Errorf("config: watch_debounce_ms must not be negative (got %d)", cfg.WatchDebounceMs)
	}
	return nil
}

// UserConfigPath returns the path to the user-level config file,
// following the XDG Base Directory Specification on Linux
// (~/.config/calclog/config.yml).
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "calclog", "config.yml"), nil
}

// ProjectConfigPath returns the project-level config file path,
// relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".calclog", "config.yml")
}
