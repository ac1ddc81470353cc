package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/opensync/opensync/internal/paths"
	"github.com/opensync/opensync/internal/target"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// DefaultScope is the scope commands operate on when --scope is not
	// given: "global" or "project".
	DefaultScope string `mapstructure:"default_scope" yaml:"default_scope"`

	// RegistryURL is the base URL of the public MCP registry used by the
	// search and show commands.
	RegistryURL string `mapstructure:"registry_url" yaml:"registry_url"`

	Backup BackupConfig `mapstructure:"backup" yaml:"backup"`

	// DisabledTargets lists target ids excluded from discovery and sync.
	DisabledTargets []string `mapstructure:"disabled_targets" yaml:"disabled_targets"`

	// TargetPaths overrides the config file path per target id.
	TargetPaths map[string]string `mapstructure:"target_paths" yaml:"target_paths"`
}

// BackupConfig controls pre-write backups of target files.
type BackupConfig struct {
	// Enabled turns automatic backups on for every write. Individual
	// commands can still opt out with --no-backup.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Retention is how many backups to keep per target file; older ones
	// are pruned after each new backup. Zero keeps everything.
	Retention int `mapstructure:"retention" yaml:"retention"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("OPENSYNC")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("default_scope", string(target.ScopeGlobal))
	viper.SetDefault("backup.enabled", true)
	viper.SetDefault("backup.retention", 10)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file; a missing explicit
// file is an error. If path is empty, it searches the default locations and
// falls back to defaults when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Scope returns the configured default scope as a typed value.
func (c *Config) Scope() target.Scope {
	if c.DefaultScope == string(target.ScopeProject) {
		return target.ScopeProject
	}
	return target.ScopeGlobal
}

// Catalog builds the target catalog with this config's per-target path
// overrides applied and disabled targets removed, preserving the default
// catalog's order.
func (c *Config) Catalog() *target.Catalog {
	disabled := map[string]bool{}
	for _, id := range c.DisabledTargets {
		disabled[id] = true
	}

	var targets []target.Target
	for _, tgt := range target.DefaultCatalog().All() {
		if disabled[tgt.ID] {
			continue
		}
		t := *tgt
		if override, ok := c.TargetPaths[t.ID]; ok && override != "" {
			t.Path = override
		}
		targets = append(targets, t)
	}
	return target.NewCatalog(targets)
}
