/*
Package config manages the TOML configuration for pkgserve.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/archpkg/pkgserve/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Complete CompleteConfig `toml:"complete"`
	Server   ServerConfig   `toml:"server"`
	Paths    PathsConfig    `toml:"paths"`
}

// CompleteConfig tunes the ranking pipeline.
type CompleteConfig struct {
	DefaultLimit       int  `toml:"default_limit"`
	RecencyHorizonDays int  `toml:"recency_horizon_days"`
	WriteThrough       bool `toml:"write_through"`
}

// ServerConfig bounds the IPC request surface.
type ServerConfig struct {
	MaxLimit    int `toml:"max_limit"`
	MaxQueryLen int `toml:"max_query_len"`
}

// PathsConfig points at the external data files. Empty values mean
// builtin defaults (dataset, aliases) or the standard cache location.
type PathsConfig struct {
	Dataset    string `toml:"dataset"`
	Aliases    string `toml:"aliases"`
	UsageCache string `toml:"usage_cache"`
	PurposeMap string `toml:"purpose_map"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Complete: CompleteConfig{
			DefaultLimit:       10,
			RecencyHorizonDays: 30,
			WriteThrough:       true,
		},
		Server: ServerConfig{
			MaxLimit:    64,
			MaxQueryLen: 60,
		},
		Paths: PathsConfig{},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/pkgserve
// 2. ~/Library/Application Support/pkgserve (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "pkgserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "pkgserve")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	return utils.GetExecutableDir()
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetCacheDir resolves the usage-cache directory from XDG_CACHE_HOME with
// an ~/.cache fallback.
func GetCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "pkgserve"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".cache", "pkgserve"), nil
}

// UsageCachePath returns the configured usage-cache file path, falling back
// to the standard cache location.
func (c *Config) UsageCachePath() string {
	if c.Paths.UsageCache != "" {
		return c.Paths.UsageCache
	}
	cacheDir, err := GetCacheDir()
	if err != nil {
		log.Warnf("Failed to resolve cache dir: %v. Usage tracking disabled for this run.", err)
		return ""
	}
	return filepath.Join(cacheDir, "usage.bin")
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/pkgserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, recovering whatever sections parse
// when the file is partially malformed.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages valid sections from a malformed config file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "complete"); ok {
		if val, ok := utils.ExtractInt64(section, "default_limit"); ok {
			config.Complete.DefaultLimit = val
		}
		if val, ok := utils.ExtractInt64(section, "recency_horizon_days"); ok {
			config.Complete.RecencyHorizonDays = val
		}
		if val, ok := utils.ExtractBool(section, "write_through"); ok {
			config.Complete.WriteThrough = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "max_limit"); ok {
			config.Server.MaxLimit = val
		}
		if val, ok := utils.ExtractInt64(section, "max_query_len"); ok {
			config.Server.MaxQueryLen = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "paths"); ok {
		if val, ok := utils.ExtractString(section, "dataset"); ok {
			config.Paths.Dataset = val
		}
		if val, ok := utils.ExtractString(section, "aliases"); ok {
			config.Paths.Aliases = val
		}
		if val, ok := utils.ExtractString(section, "usage_cache"); ok {
			config.Paths.UsageCache = val
		}
		if val, ok := utils.ExtractString(section, "purpose_map"); ok {
			config.Paths.PurposeMap = val
		}
	}
	return config, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
