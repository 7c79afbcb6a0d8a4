// Package config loads the BFF settings from defaults, an optional YAML file
// and BFF_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jcmexdev/payments-bff/internal/bff/infra/adapters/catalogue"
	"github.com/jcmexdev/payments-bff/internal/pkg/telemetry"
)

const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"

	SourceMemory = "memory"
	SourceRedis  = "redis"
)

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Payment   PaymentConfig   `mapstructure:"payment"`
	Catalogue CatalogueConfig `mapstructure:"catalogue"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type PaymentConfig struct {
	Transport   string        `mapstructure:"transport"`
	BaseURL     string        `mapstructure:"base_url"`
	GRPCAddr    string        `mapstructure:"grpc_addr"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
}

type CatalogueConfig struct {
	Source    string       `mapstructure:"source"`
	RedisAddr string       `mapstructure:"redis_addr"`
	Prices    []PriceEntry `mapstructure:"prices"`
}

// PriceEntry is one catalogue row. UnitAmount is in minor units and kept as
// text so that values like "11.00" can be checked before use.
type PriceEntry struct {
	ProductID  string `mapstructure:"product_id"`
	Currency   string `mapstructure:"currency"`
	UnitAmount string `mapstructure:"unit_amount"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	Exporter    string `mapstructure:"exporter"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("payment.transport", TransportHTTP)
	v.SetDefault("payment.base_url", "http://localhost:8081")
	v.SetDefault("payment.grpc_addr", "localhost:9091")
	v.SetDefault("payment.timeout", 5*time.Second)
	v.SetDefault("payment.max_attempts", 3)
	v.SetDefault("payment.retry_delay", time.Duration(0))
	v.SetDefault("catalogue.source", SourceMemory)
	v.SetDefault("catalogue.redis_addr", "localhost:6379")
	v.SetDefault("catalogue.prices", []map[string]any{{
		"product_id":  "12eb9101-6cd5-4378-8283-8924a64ddb05",
		"currency":    "GBP",
		"unit_amount": "11",
	}})
	v.SetDefault("log.level", "info")
	v.SetDefault("telemetry.service_name", "payments-bff")
	v.SetDefault("telemetry.exporter", telemetry.ExporterNone)
}

// Load reads the configuration. path may be empty to skip the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("BFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	switch c.Payment.Transport {
	case TransportHTTP:
		if c.Payment.BaseURL == "" {
			errs = append(errs, errors.New("payment.base_url is required for the http transport"))
		}
	case TransportGRPC:
		if c.Payment.GRPCAddr == "" {
			errs = append(errs, errors.New("payment.grpc_addr is required for the grpc transport"))
		}
	default:
		errs = append(errs, fmt.Errorf("payment.transport %q must be %q or %q", c.Payment.Transport, TransportHTTP, TransportGRPC))
	}
	if c.Payment.Timeout <= 0 {
		errs = append(errs, errors.New("payment.timeout must be positive"))
	}
	if c.Payment.MaxAttempts < 1 {
		errs = append(errs, errors.New("payment.max_attempts must be at least 1"))
	}
	if c.Payment.RetryDelay < 0 {
		errs = append(errs, errors.New("payment.retry_delay must not be negative"))
	}
	switch c.Catalogue.Source {
	case SourceMemory:
		if _, err := c.PriceTable(); err != nil {
			errs = append(errs, err)
		}
	case SourceRedis:
		if c.Catalogue.RedisAddr == "" {
			errs = append(errs, errors.New("catalogue.redis_addr is required for the redis source"))
		}
	default:
		errs = append(errs, fmt.Errorf("catalogue.source %q must be %q or %q", c.Catalogue.Source, SourceMemory, SourceRedis))
	}
	if _, err := telemetry.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Telemetry.Exporter {
	case telemetry.ExporterNone, telemetry.ExporterOTLP, telemetry.ExporterStdout:
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter %q is not supported", c.Telemetry.Exporter))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Prices converts the configured rows into catalogue prices.
func (c *Config) Prices() ([]catalogue.Price, error) {
	prices := make([]catalogue.Price, 0, len(c.Catalogue.Prices))
	for i, entry := range c.Catalogue.Prices {
		amount, err := catalogue.ParseUnitAmount(entry.UnitAmount)
		if err != nil {
			return nil, fmt.Errorf("catalogue.prices[%d]: %w", i, err)
		}
		prices = append(prices, catalogue.Price{
			ProductID:  entry.ProductID,
			Currency:   entry.Currency,
			UnitAmount: amount,
		})
	}
	return prices, nil
}

// PriceTable builds the in-memory catalogue from the configured rows.
func (c *Config) PriceTable() (*catalogue.Table, error) {
	prices, err := c.Prices()
	if err != nil {
		return nil, err
	}
	return catalogue.NewTable(prices...)
}
