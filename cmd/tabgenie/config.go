package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/tabgenie"
	"github.com/fwojciec/tabgenie/catalog"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix prefixes environment variables read into the configuration.
const envPrefix = "TABGENIE_"

// configFiles are looked up in the working directory when no config file
// is given.
var configFiles = []string{"tabgenie.yaml", "tabgenie.yml"}

// Config holds the application configuration.
type Config struct {
	DataDir            string `koanf:"data_dir"`
	DBPath             string `koanf:"db_path"`
	ExportDir          string `koanf:"export_dir"`
	MaxExamples        int    `koanf:"max_examples"`
	Concurrency        int    `koanf:"concurrency"`
	ViewCacheSize      int    `koanf:"view_cache_size"`
	LinearizationStyle string `koanf:"linearization_style"`
	PropsMode          string `koanf:"props_mode"`
	DefaultDataset     string `koanf:"default_dataset"`
	Verbose            bool   `koanf:"verbose"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		DataDir:            "data",
		DBPath:             defaultDBPath(),
		ExportDir:          "export",
		Concurrency:        catalog.DefaultConcurrency,
		ViewCacheSize:      catalog.DefaultViewCacheSize,
		LinearizationStyle: string(tabgenie.Style2D),
		PropsMode:          string(tabgenie.PropsAll),
		DefaultDataset:     "totto",
	}
}

// Validate returns an error if the configuration contains invalid values.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return tabgenie.Errorf(tabgenie.EINVALID, "data_dir required")
	}
	if c.DBPath == "" {
		return tabgenie.Errorf(tabgenie.EINVALID, "db_path required")
	}
	if c.MaxExamples < 0 {
		return tabgenie.Errorf(tabgenie.EINVALID, "max_examples must not be negative")
	}
	if _, err := tabgenie.ParseLinearStyle(c.LinearizationStyle); err != nil {
		return err
	}
	if _, err := tabgenie.ParsePropsMode(c.PropsMode); err != nil {
		return err
	}
	return nil
}

// LinearOptions returns the configured linearization defaults.
func (c *Config) LinearOptions() tabgenie.LinearOptions {
	style, _ := tabgenie.ParseLinearStyle(c.LinearizationStyle)
	mode, _ := tabgenie.ParsePropsMode(c.PropsMode)
	return tabgenie.LinearOptions{Style: style, Props: mode}
}

// LoadConfig loads configuration from defaults, the config file,
// environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags map[string]any) (*Config, error) {
	k := koanf.New(".")

	def := DefaultConfig()
	if err := k.Load(confmap.Provider(map[string]any{
		"data_dir":            def.DataDir,
		"db_path":             def.DBPath,
		"export_dir":          def.ExportDir,
		"max_examples":        def.MaxExamples,
		"concurrency":         def.Concurrency,
		"view_cache_size":     def.ViewCacheSize,
		"linearization_style": def.LinearizationStyle,
		"props_mode":          def.PropsMode,
		"default_dataset":     def.DefaultDataset,
		"verbose":             def.Verbose,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// TABGENIE_DATA_DIR -> data_dir
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns the config file to use.
// Priority: explicit path > tabgenie.yaml > tabgenie.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tabgenie.db"
	}
	return filepath.Join(home, ".tabgenie", "tabgenie.db")
}
