package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds tool-wide settings shared by the CLI and the TUI
type Config struct {
	// OutputDir is where converted archives and extractions land.
	OutputDir string `mapstructure:"output_dir"`
	// FileExtension selects which files the browser and CLI accept.
	FileExtension string `mapstructure:"file_extension"`
	// OverwriteExisting controls whether conversion may replace an
	// existing output archive.
	OverwriteExisting bool `mapstructure:"overwrite_existing"`
}

// Load reads configuration using Viper. A missing config file is fine;
// defaults and CRX_* environment variables apply either way.
func Load() (*Config, error) {
	viper.SetConfigName("crx-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.crx")

	viper.SetDefault("output_dir", "out")
	viper.SetDefault("file_extension", ".crx")
	viper.SetDefault("overwrite_existing", false)

	viper.SetEnvPrefix("CRX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration without consulting files
// or the environment.
func Default() *Config {
	return &Config{
		OutputDir:         "out",
		FileExtension:     ".crx",
		OverwriteExisting: false,
	}
}
