// Package config reads server configuration from environment variables,
// applying defaults. Nothing here touches the network; backend connectivity
// is validated by the stores at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// StoreBackend selects the record store implementation.
type StoreBackend string

const (
	StoreMemory   StoreBackend = "memory"
	StoreNeo4j    StoreBackend = "neo4j"
	StoreDynamoDB StoreBackend = "dynamodb"
)

// Config aggregates application configuration values.
type Config struct {
	Store     StoreBackend
	ReadOnly  bool
	Neo4j     Neo4jConfig
	DynamoDB  DynamoDBConfig
	LLM       LLMConfig
	Analytics AnalyticsConfig
	Logging   LoggingConfig
}

// Neo4jConfig describes connectivity to the Neo4j backend.
type Neo4jConfig struct {
	URI      string
	Database string
	Username string
	Password string
}

// DynamoDBConfig describes connectivity to the DynamoDB backend.
type DynamoDBConfig struct {
	Region   string
	Table    string
	Endpoint string
}

// LLMConfig describes the chat-completions provider used for narrative text.
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// AnalyticsConfig controls usage telemetry.
type AnalyticsConfig struct {
	Endpoint string
	Disabled bool
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultStore         = StoreMemory
	defaultDynamoDBTable = "fraud-records"
	defaultLLMTimeout    = 30 * time.Second
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Store:    StoreBackend(valueOrDefault("FRAUD_STORE", string(defaultStore))),
		ReadOnly: parseBoolWithDefault("FRAUD_READ_ONLY", false),
		Neo4j: Neo4jConfig{
			URI:      os.Getenv("NEO4J_URI"),
			Database: os.Getenv("NEO4J_DATABASE"),
			Username: os.Getenv("NEO4J_USERNAME"),
			Password: os.Getenv("NEO4J_PASSWORD"),
		},
		DynamoDB: DynamoDBConfig{
			Region:   os.Getenv("AWS_REGION"),
			Table:    valueOrDefault("DYNAMODB_TABLE", defaultDynamoDBTable),
			Endpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		LLM: LLMConfig{
			BaseURL: os.Getenv("LLM_BASE_URL"),
			APIKey:  os.Getenv("LLM_API_KEY"),
			Model:   os.Getenv("LLM_MODEL"),
			Timeout: defaultLLMTimeout,
		},
		Analytics: AnalyticsConfig{
			Endpoint: os.Getenv("ANALYTICS_ENDPOINT"),
			Disabled: parseBoolWithDefault("ANALYTICS_DISABLED", false),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	switch cfg.Store {
	case StoreMemory, StoreNeo4j, StoreDynamoDB:
	default:
		return nil, fmt.Errorf("unknown FRAUD_STORE value %q", cfg.Store)
	}

	if cfg.Store == StoreNeo4j && cfg.Neo4j.URI == "" {
		return nil, fmt.Errorf("NEO4J_URI is required when FRAUD_STORE=neo4j")
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
		}
		cfg.LLM.Timeout = d
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
