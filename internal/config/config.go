package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the deploy-time configuration. The rabbitmq section is
// optional; when absent, notifications are logged instead of published.
type Config struct {
	RMQ  *RabbitMQ `yaml:"rabbitmq"`
	Menu Menu      `yaml:"menu"`
}

type RabbitMQ struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	VHost    string `yaml:"vhost"`
}

type Menu struct {
	// Path of the menu data file; empty means the built-in menu.
	Path string `yaml:"path"`
}

// LoadConfig reads the YAML config at configPath. A missing file is not
// an error: the environment-backed defaults are used instead.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadDotEnv(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv builds a config from environment variables. RabbitMQ is
// enabled only when RABBITMQ_HOST is set.
func LoadDotEnv() *Config {
	cfg := &Config{
		Menu: Menu{Path: os.Getenv("MENU_PATH")},
	}

	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		cfg.RMQ = &RabbitMQ{
			Host:     host,
			Port:     getEnv("RABBITMQ_PORT", "5672"),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			VHost:    getEnv("RABBITMQ_VHOST", ""),
		}
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
