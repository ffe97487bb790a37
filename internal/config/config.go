package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Package config handles loading, validation, and access to application configuration.

// Config holds the application configuration.
type Config struct {
	View struct {
		Theme    string `yaml:"theme,omitempty"`    // "dark" or "light"
		Language string `yaml:"language,omitempty"` // default language override, "auto" to detect
		Wrap     int    `yaml:"wrap,omitempty"`     // word-wrap width for the text view
	} `yaml:"view,omitempty"`

	Export struct {
		Dir string `yaml:"dir,omitempty"` // where /export writes documents
	} `yaml:"export,omitempty"`

	Log struct {
		Level string `yaml:"level,omitempty"` // e.g., debug, info, warn, error
	} `yaml:"log,omitempty"`
}

const (
	defaultConfigDirName  = ".prism"
	defaultConfigFileName = "prism.yaml"
	defaultTheme          = "dark"
	defaultLanguage       = "auto"
	defaultWrap           = 80
	defaultLogLevel       = "info"
)

// Load tries to load configuration from standard locations.
// Priority: ./{fileName}, ~/{dirName}/{fileName}. A missing file is
// not an error; defaults apply.
func Load() (*Config, error) {
	fileName := defaultConfigFileName
	dirName := defaultConfigDirName

	// 1. Check current directory
	cfg, err := loadFromFile(fileName)
	if err == nil {
		applyDefaults(cfg)
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "reading config from %s", fileName)
	}

	// 2. Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "could not get user home directory")
	}
	homeConfigPath := filepath.Join(homeDir, dirName, fileName)
	cfg, err = loadFromFile(homeConfigPath)
	if err == nil {
		applyDefaults(cfg)
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "reading config from %s", homeConfigPath)
	}

	// 3. No config file found, run on defaults.
	defaultCfg := &Config{}
	applyDefaults(defaultCfg)
	return defaultCfg, nil
}

func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err // Propagate error (including os.IsNotExist)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config yaml %s", filePath)
	}

	return &cfg, nil
}

// applyDefaults ensures essential fields have default values if not set.
func applyDefaults(cfg *Config) {
	if cfg.View.Theme == "" {
		cfg.View.Theme = defaultTheme
	}
	if cfg.View.Language == "" {
		cfg.View.Language = defaultLanguage
	}
	if cfg.View.Wrap <= 0 {
		cfg.View.Wrap = defaultWrap
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "."
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}
