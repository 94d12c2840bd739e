package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// Config holds all configuration for edge-finder-service
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers    []string `mapstructure:"brokers"`
	Topic      string   `mapstructure:"topic"`       // Offer snapshots to consume
	GroupID    string   `mapstructure:"group_id"`
	EdgesTopic string   `mapstructure:"edges_topic"` // Where detected edges are published
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// EngineConfig holds edge detection parameters
type EngineConfig struct {
	ReferenceBookmaker    string  `mapstructure:"reference_bookmaker"`
	MinEdge               float64 `mapstructure:"min_edge"`        // Percent, inclusive
	MaxEdge               float64 `mapstructure:"max_edge"`        // Percent, exclusive
	KellyThreshold        float64 `mapstructure:"kelly_threshold"` // Bankroll fraction
	EnforceKellyThreshold bool    `mapstructure:"enforce_kelly_threshold"`
	TwoWayInclusiveScan   bool    `mapstructure:"two_way_inclusive_scan"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A local .env is optional
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "offer_snapshots")
	v.SetDefault("kafka.group_id", "edge-finder")
	v.SetDefault("kafka.edges_topic", "edges")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 10*time.Minute)

	v.SetDefault("engine.reference_bookmaker", "pinnacle")
	v.SetDefault("engine.min_edge", 0.5)
	v.SetDefault("engine.max_edge", 40.0)
	v.SetDefault("engine.kelly_threshold", 0.01)
	v.SetDefault("engine.enforce_kelly_threshold", false)
	v.SetDefault("engine.two_way_inclusive_scan", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("EDGE_FINDER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate checks values the engine cannot run without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Engine.ReferenceBookmaker) == "" {
		return fmt.Errorf("engine.reference_bookmaker is required")
	}
	if c.Engine.MinEdge >= c.Engine.MaxEdge {
		return fmt.Errorf("engine.min_edge (%v) must be below engine.max_edge (%v)", c.Engine.MinEdge, c.Engine.MaxEdge)
	}
	if c.Engine.KellyThreshold < 0 || c.Engine.KellyThreshold > 1 {
		return fmt.Errorf("engine.kelly_threshold must be within [0, 1], got %v", c.Engine.KellyThreshold)
	}
	return nil
}

// ToFinderParams converts config to edge finder parameters
func (c *EngineConfig) ToFinderParams() models.FinderParams {
	return models.FinderParams{
		ReferenceBookmaker:    c.ReferenceBookmaker,
		MinEdge:               decimal.NewFromFloat(c.MinEdge),
		MaxEdge:               decimal.NewFromFloat(c.MaxEdge),
		KellyThreshold:        decimal.NewFromFloat(c.KellyThreshold),
		EnforceKellyThreshold: c.EnforceKellyThreshold,
		TwoWayInclusiveScan:   c.TwoWayInclusiveScan,
	}
}
