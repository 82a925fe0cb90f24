package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"redis"`
	Storage struct {
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
	} `yaml:"storage"`
	FCM struct {
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"fcm"`
	StatusCleaner struct {
		Interval string `yaml:"interval"`
	} `yaml:"status_cleaner"`
	Auth struct {
		SigningKey string `yaml:"signing_key"`
	} `yaml:"auth"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}
	return cfg
}

// CacheTTL returns the configured Redis TTL, or fallback when the value is
// missing or malformed.
func (c Config) CacheTTL(fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(c.Redis.CacheTTL)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// CleanerInterval returns the configured status cleaner period, or fallback
// when the value is missing or malformed.
func (c Config) CleanerInterval(fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(c.StatusCleaner.Interval)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
