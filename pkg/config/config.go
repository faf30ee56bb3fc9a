// Package config loads TOML configuration with environment overrides and defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for the import service.
type Config struct {
	ServiceName string `mapstructure:"service_name"`
	// Environment: dev, staging, prod
	Environment string         `mapstructure:"environment"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Kafka       KafkaConfig    `mapstructure:"kafka"`
	Importer    ImporterConfig `mapstructure:"importer"`
}

// DatabaseConfig configures the relational store.
type DatabaseConfig struct {
	// Driver: mysql
	Driver             string `mapstructure:"driver" default:"mysql"`
	DSN                string `mapstructure:"dsn"`
	MaxOpenConns       int    `mapstructure:"max_open_conns" default:"25"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns" default:"5"`
	ConnMaxLifetime    int    `mapstructure:"conn_max_lifetime" default:"300"`
	LogEnabled         bool   `mapstructure:"log_enabled" default:"false"`
	SlowQueryThreshold int    `mapstructure:"slow_query_threshold" default:"1000"`
}

// LoggerConfig mirrors pkg/logger.Config.
type LoggerConfig struct {
	Level      string `mapstructure:"level" default:"info"`
	Format     string `mapstructure:"format" default:"json"`
	Output     string `mapstructure:"output" default:"stdout"`
	FilePath   string `mapstructure:"file_path" default:"logs/catalogsync.log"`
	MaxSize    int    `mapstructure:"max_size" default:"100"`
	MaxBackups int    `mapstructure:"max_backups" default:"10"`
	MaxAge     int    `mapstructure:"max_age" default:"30"`
	Compress   bool   `mapstructure:"compress" default:"true"`
	WithCaller bool   `mapstructure:"with_caller" default:"false"`
}

// KafkaConfig configures the optional job-event publisher. Leaving Brokers
// empty disables publishing.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic" default:"catalogsync.import-jobs"`
}

// ImporterConfig carries pipeline parameters.
type ImporterConfig struct {
	// SettlementCurrency is the currency all offer prices are stored in.
	SettlementCurrency string `mapstructure:"settlement_currency" default:"MXN"`
	// USDRate is the default settlement-per-USD exchange rate, overridable per run.
	USDRate float64 `mapstructure:"usd_rate" default:"18.5"`
	// HeaderScanRows bounds the smart header search.
	HeaderScanRows int `mapstructure:"header_scan_rows" default:"20"`
	// FormatOverrides forces an extractor per supplier slug (e.g. "proveedor-c" = "pdf").
	FormatOverrides map[string]string `mapstructure:"format_overrides"`
}

// Load reads a TOML file, applies defaults and APP_ env overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		c.ServiceName = "catalogsync"
	}
	if c.Environment == "" {
		c.Environment = "dev"
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database DSN is required for %s driver", c.Database.Driver)
	}
	if c.Importer.USDRate <= 0 {
		return fmt.Errorf("importer usd_rate must be positive, got %v", c.Importer.USDRate)
	}
	if c.Importer.SettlementCurrency == "" {
		return fmt.Errorf("importer settlement_currency is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)
	v.SetDefault("database.log_enabled", false)
	v.SetDefault("database.slow_query_threshold", 1000)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.file_path", "logs/catalogsync.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 10)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.with_caller", false)

	v.SetDefault("kafka.topic", "catalogsync.import-jobs")

	v.SetDefault("importer.settlement_currency", "MXN")
	v.SetDefault("importer.usd_rate", 18.5)
	v.SetDefault("importer.header_scan_rows", 20)
}

// GetEnv returns an environment variable or a default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
