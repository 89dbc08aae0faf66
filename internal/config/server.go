package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

type SessionConfig struct {
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

type KafkaConfig struct {
	Enabled                bool          `yaml:"enabled"`
	Brokers                []string      `yaml:"brokers"`
	TopicMetrics           string        `yaml:"topic_metrics"`
	RequiredAcks           int           `yaml:"required_acks"`
	Compression            string        `yaml:"compression"`
	AllowAutoTopicCreation bool          `yaml:"allow_auto_topic_creation"`
	DialTimeout            time.Duration `yaml:"dial_timeout"`
	ReadTimeout            time.Duration `yaml:"read_timeout"`
	WriteTimeout           time.Duration `yaml:"write_timeout"`
	BatchTimeout           time.Duration `yaml:"batch_timeout"`
	BatchSize              int           `yaml:"batch_size"`
	MaxAttempts            int           `yaml:"max_attempts"`
	MinBytes               int           `yaml:"min_bytes"`
	MaxBytes               int           `yaml:"max_bytes"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 24 * time.Hour
	}

	if cfg.Session.CleanupInterval == 0 {
		cfg.Session.CleanupInterval = 5 * time.Minute
	}

	if cfg.Kafka.TopicMetrics == "" {
		cfg.Kafka.TopicMetrics = "course-platform.metrics"
	}

	if cfg.Kafka.DialTimeout == 0 {
		cfg.Kafka.DialTimeout = 5 * time.Second
	}

	if cfg.Kafka.ReadTimeout == 0 {
		cfg.Kafka.ReadTimeout = 10 * time.Second
	}

	if cfg.Kafka.WriteTimeout == 0 {
		cfg.Kafka.WriteTimeout = 10 * time.Second
	}

	if cfg.Kafka.BatchTimeout == 0 {
		cfg.Kafka.BatchTimeout = 100 * time.Millisecond
	}

	if cfg.Kafka.MaxAttempts == 0 {
		cfg.Kafka.MaxAttempts = 3
	}

	return &cfg, nil
}
