// Package config loads runtime settings from defaults, an optional config
// file, a .env file and MEDADVISOR_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "MEDADVISOR"

// Knowledge sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	Server    ServerConfig    `mapstructure:"server"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type KnowledgeConfig struct {
	Source      string `mapstructure:"source"`
	File        string `mapstructure:"file"`
	DatabaseURL string `mapstructure:"database_url"`
}

type ServerConfig struct {
	Port         string  `mapstructure:"port"`
	MaxBodyBytes int64   `mapstructure:"max_body_bytes"`
	RateLimit    float64 `mapstructure:"rate_limit"` // requests per second, 0 disables
	RateBurst    int     `mapstructure:"rate_burst"`
}

// NewViper returns a viper instance with defaults and env binding applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("knowledge.source", SourceEmbedded)
	v.SetDefault("knowledge.file", "")
	v.SetDefault("knowledge.database_url", "")
	_ = v.BindEnv("knowledge.database_url", EnvPrefix+"_KNOWLEDGE_DATABASE_URL", "DATABASE_URL")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 10)

	return v
}

// Load reads configuration into a validated Config. configFile may be empty.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	_ = godotenv.Load()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	switch c.Knowledge.Source {
	case SourceEmbedded:
	case SourceFile:
		if c.Knowledge.File == "" {
			return fmt.Errorf("knowledge.file is required when knowledge.source=file")
		}
	case SourcePostgres:
		if c.Knowledge.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when knowledge.source=postgres")
		}
	default:
		return fmt.Errorf("unknown knowledge source: %s", c.Knowledge.Source)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}
	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		return fmt.Errorf("server rate limit settings must not be negative")
	}
	return nil
}
