// Package config loads runtime configuration for the fiemap tool.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-fiemap/internal/fiemap"
)

// Config holds the tunables for extent retrieval and output.
type Config struct {
	// MaxExtentsPerChunk is the extent capacity of one ioctl round trip.
	MaxExtentsPerChunk uint32 `mapstructure:"max_extents_per_chunk"`

	// SyncBeforeMap asks the filesystem to flush pending writes before
	// reporting extents, matching filefrag -s behaviour.
	SyncBeforeMap bool `mapstructure:"sync_before_map"`

	// OutputFormat is the default output format (table, json, yaml).
	OutputFormat string `mapstructure:"output_format"`

	// ShowFlagNames renders extent flags as names next to the hex value.
	ShowFlagNames bool `mapstructure:"show_flag_names"`
}

// Load reads configuration using Viper. A missing config file is not an
// error; defaults and FIEMAP_* environment variables still apply.
func Load() (*Config, error) {
	viper.SetConfigName("fiemap-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.fiemap")
	viper.AddConfigPath("/etc/fiemap")

	viper.SetDefault("max_extents_per_chunk", fiemap.DefaultMaxExtentsPerChunk)
	viper.SetDefault("sync_before_map", true)
	viper.SetDefault("output_format", "table")
	viper.SetDefault("show_flag_names", false)

	viper.SetEnvPrefix("FIEMAP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the retrieval loop cannot work with.
func (c *Config) Validate() error {
	if c.MaxExtentsPerChunk == 0 {
		return fmt.Errorf("max_extents_per_chunk must be at least 1")
	}
	switch c.OutputFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format: %s", c.OutputFormat)
	}
	return nil
}
