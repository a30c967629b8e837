// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config loads application configuration from
// ~/.anitrack/config.yaml and ANITRACK_* environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the resolved application settings.
type Config struct {
	// DataDir is where the tracking database lives.
	DataDir string `mapstructure:"data_dir"`
	// Storage selects the KV backend: "sqlite" or "memory".
	Storage string `mapstructure:"storage"`
	// CatalogURL is the AniList GraphQL endpoint.
	CatalogURL string `mapstructure:"catalog_url"`
	// CatalogTimeout bounds catalog API requests.
	CatalogTimeout time.Duration `mapstructure:"catalog_timeout"`
}

// Load reads configuration, applying defaults for anything unset.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	defaultDir := filepath.Join(home, ".anitrack")

	v.SetDefault("data_dir", defaultDir)
	v.SetDefault("storage", "sqlite")
	v.SetDefault("catalog_url", "https://graphql.anilist.co")
	v.SetDefault("catalog_timeout", 10*time.Second)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultDir)
	v.SetEnvPrefix("ANITRACK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DBPath returns the path of the SQLite database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "anitrack.db")
}
