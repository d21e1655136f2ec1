package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API         APIConfig       `yaml:"api"`
	Storage     StorageConfig   `yaml:"storage"`
	Telemetry   TelemetryConfig `yaml:"telemetry"`
	LogLevel    string          `yaml:"log_level"`
	MetricsAddr string          `yaml:"metrics_addr"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type StorageConfig struct {
	TokenPath string `yaml:"token_path"`
}

type TelemetryConfig struct {
	EventsPerSecond float64       `yaml:"events_per_second"`
	Burst           int           `yaml:"burst"`
	SendTimeout     time.Duration `yaml:"send_timeout"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8000"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 15 * time.Second
	}
	if c.Storage.TokenPath == "" {
		c.Storage.TokenPath = "session.db"
	}
	if c.Telemetry.EventsPerSecond == 0 {
		c.Telemetry.EventsPerSecond = 20
	}
	if c.Telemetry.Burst == 0 {
		c.Telemetry.Burst = 100
	}
	if c.Telemetry.SendTimeout == 0 {
		c.Telemetry.SendTimeout = 10 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
