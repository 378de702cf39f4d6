// Package config handles catalog path resolution and global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/curio/config.yml.
type GlobalConfig struct {
	CatalogPath string `yaml:"catalog_path,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "curio"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// EnvCatalogPath is the environment variable overriding the catalog path.
	EnvCatalogPath = "CURIO_CATALOG"
	// DefaultCatalogFile is the fallback catalog file in the working directory.
	DefaultCatalogFile = "catalog.csv"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/curio/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// SaveGlobalConfig writes the global configuration file, creating the
// config directory if needed.
func SaveGlobalConfig(cfg *GlobalConfig) error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding global config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing global config: %w", err)
	}

	globalConfigCache = nil
	return nil
}

// ResetGlobalConfigCache clears the cached global config. Used by tests.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// ResolveCatalogPath picks the catalog file path. Precedence: explicit
// flag value, CURIO_CATALOG environment variable, global config, then
// catalog.csv in the working directory.
func ResolveCatalogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvCatalogPath); env != "" {
		return env
	}
	if cfg, err := LoadGlobalConfig(); err == nil && cfg.CatalogPath != "" {
		return cfg.CatalogPath
	}
	return DefaultCatalogFile
}

// DBPath returns the SQLite index path for a catalog file. The index
// sits next to the catalog with a .db extension.
func DBPath(catalogPath string) string {
	ext := filepath.Ext(catalogPath)
	return strings.TrimSuffix(catalogPath, ext) + ".db"
}
