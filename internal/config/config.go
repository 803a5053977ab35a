// Package config loads tracker configuration from an optional YAML file and
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines tracker configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig selects the slot backend. Path is a directory for the file
// backend and a database path for the sqlite backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Key     string `yaml:"key"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DisplayConfig controls how the list view renders.
type DisplayConfig struct {
	DateLayout        string `yaml:"date_layout"`
	MessageTimeoutSec int    `yaml:"message_timeout_seconds"`
}

// Load reads configuration from an optional YAML file and environment
// variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8484,
		},
		Storage: StorageConfig{
			Backend: "file",
			Path:    "data",
			Key:     "learner-hours",
		},
		Log: LogConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			DateLayout:        "1/2/2006",
			MessageTimeoutSec: 3,
		},
	}

	if path := os.Getenv("LEARNER_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("LEARNER_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("LEARNER_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LEARNER_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if backend := os.Getenv("LEARNER_STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if path := os.Getenv("LEARNER_STORAGE_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	if key := os.Getenv("LEARNER_STORAGE_KEY"); key != "" {
		cfg.Storage.Key = key
	}
	if level := os.Getenv("LEARNER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Storage.Backend != "file" && cfg.Storage.Backend != "sqlite" {
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
