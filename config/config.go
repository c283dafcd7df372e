package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Redis    RedisConfig    `yaml:"redis"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

// DatabaseConfig is optional: with an empty host the contact store stays
// in memory.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DBName   string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// KafkaConfig is optional: with an empty host no contact events are
// published.
type KafkaConfig struct {
	Host                      string `yaml:"host"`
	Port                      int    `yaml:"port"`
	ContactSubmittedTopicName string `yaml:"contact_submitted_topic_name"`
}

// RedisConfig is optional: with an empty host the detail cache and the
// contact rate limiter are disabled.
type RedisConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type CatalogConfig struct {
	HTTPAddr string `yaml:"http_addr"`

	DetailCacheTTLSeconds     int `yaml:"detail_cache_ttl_seconds"`
	ContactRateLimitPerMinute int `yaml:"contact_rate_limit_per_minute"`

	NotifierHTTPAddr           string `yaml:"notifier_http_addr"`
	NotifierKafkaConsumerGroup string `yaml:"notifier_kafka_consumer_group"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return &config, nil
}
