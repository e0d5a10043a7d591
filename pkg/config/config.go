package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Provider struct {
		Type     string `yaml:"type"`     // yahoo or clickhouse
		Lookback string `yaml:"lookback"` // default analysis window
		Cache    struct {
			HistoryTTL      time.Duration `yaml:"history_ttl"`
			FundamentalsTTL time.Duration `yaml:"fundamentals_ttl"`
		} `yaml:"cache"`
	} `yaml:"provider"`
	Yahoo struct {
		BaseURL      string        `yaml:"base_url"`
		UserAgent    string        `yaml:"user_agent"`
		Timeout      time.Duration `yaml:"timeout"`
		RateCapacity float64       `yaml:"rate_capacity"`
		RateRefill   float64       `yaml:"rate_refill_per_sec"`
	} `yaml:"yahoo"`
	ClickHouse struct {
		Host         string        `yaml:"host"`
		Port         int           `yaml:"port"`
		Database     string        `yaml:"database"`
		User         string        `yaml:"user"`
		Password     string        `yaml:"password"`
		DialTimeout  time.Duration `yaml:"dial_timeout"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
	} `yaml:"clickhouse"`
	Cache struct {
		MemoryMaxSize int `yaml:"memory_max_size"`
		Redis         struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Kafka struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic"`
		RequiredAcks int           `yaml:"required_acks"`
		Compression  string        `yaml:"compression"`
		MaxAttempts  int           `yaml:"max_attempts"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
	} `yaml:"kafka"`
	Narrative struct {
		Enabled     bool          `yaml:"enabled"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model"`
		MaxTokens   int           `yaml:"max_tokens"`
		Temperature float64       `yaml:"temperature"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"narrative"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Override with environment variables
	if v := os.Getenv("PROVIDER"); v != "" {
		c.Provider.Type = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Narrative.APIKey = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Provider.Type == "" {
		c.Provider.Type = "yahoo"
	}
	if c.Provider.Lookback == "" {
		c.Provider.Lookback = "2y"
	}
	if c.Yahoo.BaseURL == "" {
		c.Yahoo.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Yahoo.UserAgent == "" {
		c.Yahoo.UserAgent = "Mozilla/5.0"
	}
	if c.Yahoo.Timeout <= 0 {
		c.Yahoo.Timeout = 30 * time.Second
	}
	if c.Yahoo.RateCapacity <= 0 {
		c.Yahoo.RateCapacity = 5
	}
	if c.Yahoo.RateRefill <= 0 {
		c.Yahoo.RateRefill = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Narrative.Model == "" {
		c.Narrative.Model = "claude-sonnet-4-20250514"
	}
	if c.Narrative.MaxTokens <= 0 {
		c.Narrative.MaxTokens = 1024
	}
	if c.Narrative.Timeout <= 0 {
		c.Narrative.Timeout = 60 * time.Second
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Provider.Type != "yahoo" && c.Provider.Type != "clickhouse" {
		return fmt.Errorf("provider.type must be 'yahoo' or 'clickhouse', got '%s'", c.Provider.Type)
	}
	if c.Provider.Type == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required for the clickhouse provider")
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}
	if c.Narrative.Enabled && c.Narrative.APIKey == "" {
		return fmt.Errorf("narrative.api_key is required when the narrative generator is enabled (or set ANTHROPIC_API_KEY)")
	}
	return nil
}
