// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Export    ExportConfig    `mapstructure:"export"`
	Load      LoadConfig      `mapstructure:"load"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// GeneratorConfig controls how much data is produced and from what seed.
type GeneratorConfig struct {
	Seed           *int64 `mapstructure:"seed"` // nil means draw one from entropy
	NumCustomers   int    `mapstructure:"num_customers"`
	NumSalesPeople int    `mapstructure:"num_sales_people"`
	AnchorDate     string `mapstructure:"anchor_date"` // YYYY-MM-DD
	RulesFile      string `mapstructure:"rules_file"`  // optional YAML overriding built-in rules
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses  []string `mapstructure:"addresses"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	SSLEnabled bool     `mapstructure:"ssl_enabled"`
	URL        string   `mapstructure:"url"` // Single URL for backwards compatibility
}

// GetURL returns the first address or the URL field
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ExportConfig controls how a generated dataset is written to disk.
type ExportConfig struct {
	Format string `mapstructure:"format"` // json or csv
	Output string `mapstructure:"output"` // file for json, directory for csv
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig selects which storage targets receive the dataset.
type LoadConfig struct {
	Postgres      bool `mapstructure:"postgres"`
	Redis         bool `mapstructure:"redis"`
	Elasticsearch bool `mapstructure:"elasticsearch"`
}

// Targets reports whether any load target is enabled.
func (l LoadConfig) Targets() bool {
	return l.Postgres || l.Redis || l.Elasticsearch
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig holds settings for the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}
