// Package config loads fix-components settings. Environment variables
// (FIX_COMPONENTS_*) take precedence over an optional YAML file, which takes
// precedence over the Defaults table.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the settings for a fix-components run
type Config struct {
	Root    string `mapstructure:"root"`
	Confirm bool   `mapstructure:"confirm"`

	filePath string
}

// Load reads configuration from the environment and, when configFile is
// set, from that file. An explicitly named file that cannot be read is an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.filePath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that Root is usable as a target directory.
// A root that does not exist yet is fine; it is created on write.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("config key %s cannot be empty", KeyRoot)
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to check root %s: %w", c.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s exists but is not a directory", c.Root)
	}

	return nil
}

// FilePath returns the configuration file that was read, or "" if none
func (c *Config) FilePath() string {
	return c.filePath
}
