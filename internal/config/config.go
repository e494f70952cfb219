package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// MongoURLEnv holds the MongoDB (Cosmos DB) connection string.
	MongoURLEnv = "COSMOSDB"
	// PathEnv overrides DefaultPath.
	PathEnv     = "IEX_COMPANIES_CONFIG"
	DefaultPath = "config/config.yml"
)

var ErrMissingMongoURL = errors.New(MongoURLEnv + " environment variable is not set")

// Config is the top-level struct that holds all configuration.
type Config struct {
	MongoDB MongoDBConfig `yaml:"mongodb"`
	IEX     IEXConfig     `yaml:"iex"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

// MongoDBConfig holds the database location. URL only ever comes from the
// environment.
type MongoDBConfig struct {
	URL            string `yaml:"-"`
	DatabaseName   string `yaml:"database_name"`
	CollectionName string `yaml:"collection_name"`
}

// IEXConfig holds the upstream quotes endpoint and the tickers to seed.
type IEXConfig struct {
	BaseURL        string   `yaml:"base_url"`
	Symbols        []string `yaml:"symbols"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type ServerConfig struct {
	Addr             string `yaml:"addr"`
	RequestTimeoutMs int    `yaml:"request_timeout_ms"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// KafkaConfig holds the optional topic seeded records are published to.
// An empty BrokerURL disables publishing.
type KafkaConfig struct {
	BrokerURL string `yaml:"broker_url"`
	Topic     string `yaml:"topic"`
}

func (c IEXConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

func (c KafkaConfig) Enabled() bool {
	return c.BrokerURL != ""
}

// Default returns the settings the service runs with when no file is given.
func Default() *Config {
	return &Config{
		MongoDB: MongoDBConfig{
			DatabaseName:   "terraformonazure",
			CollectionName: "companies",
		},
		IEX: IEXConfig{
			BaseURL:        "https://api.iextrading.com/1.0",
			Symbols:        []string{"FB", "MSFT", "NFLX", "AAPL", "GOOGL"},
			TimeoutSeconds: 10,
		},
		Server: ServerConfig{
			Addr:             ":5000",
			RequestTimeoutMs: 5000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Kafka: KafkaConfig{
			Topic: "companies",
		},
	}
}

// LoadConfig reads the connection string from the environment and overlays
// the YAML file at path (if it exists) on the defaults. The environment is
// checked first so a missing connection string fails before anything else
// is touched.
func LoadConfig(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	mongoURL := os.Getenv(MongoURLEnv)
	if mongoURL == "" {
		return nil, ErrMissingMongoURL
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
		}
	}
	cfg.MongoDB.URL = mongoURL

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Path returns the config file location, honouring PathEnv.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

func (c *Config) Validate() error {
	if c.MongoDB.URL == "" {
		return ErrMissingMongoURL
	}
	if c.MongoDB.DatabaseName == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	if c.MongoDB.CollectionName == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	u, err := url.Parse(c.IEX.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid iex base url: %q", c.IEX.BaseURL)
	}
	if len(c.IEX.Symbols) == 0 {
		return fmt.Errorf("at least one symbol must be configured")
	}
	for i, s := range c.IEX.Symbols {
		if s == "" {
			return fmt.Errorf("symbol %d cannot be empty", i)
		}
	}
	if c.IEX.TimeoutSeconds <= 0 {
		return fmt.Errorf("iex timeout must be greater than 0")
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if c.Server.RequestTimeoutMs <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}

	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka topic cannot be empty when a broker is set")
	}
	return nil
}
