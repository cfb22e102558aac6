package infra

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	// Database
	DatabaseURL string `env:"DATABASE_URL"`
	PGHost      string `env:"PGHOST" envDefault:"localhost"`
	PGPort      int    `env:"PGPORT" envDefault:"5432"`
	PGUser      string `env:"PGUSER" envDefault:"gamevault"`
	PGPassword  string `env:"PGPASSWORD" envDefault:"gamevault"`
	PGDatabase  string `env:"PGDATABASE" envDefault:"gamevault"`

	// JWT
	JWTSecret         string `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	JWTCustomerExpiry string `env:"JWT_CUSTOMER_EXPIRY" envDefault:"24h"`

	// Server
	APIPort int `env:"API_PORT" envDefault:"3200"`

	// Balance engine
	StartingBalance string `env:"STARTING_BALANCE" envDefault:"40.00"`
	TopUpAmount     string `env:"TOPUP_AMOUNT" envDefault:"20.00"`

	// Kafka
	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaEnabled bool   `env:"KAFKA_ENABLED" envDefault:"false"`

	// CORS
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	// Dev
	AllowInsecureDefaults bool `env:"ALLOW_INSECURE_DEFAULTS" envDefault:"false"`
}

// LoadConfig parses environment variables into a Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks for insecure or malformed configuration that must not run
// in production. Set ALLOW_INSECURE_DEFAULTS=true to bypass the JWT checks
// (local dev only).
func (c *Config) Validate() error {
	if _, err := c.ParsedStartingBalance(); err != nil {
		return err
	}
	if _, err := c.ParsedTopUpAmount(); err != nil {
		return err
	}
	if c.AllowInsecureDefaults {
		return nil
	}
	if c.JWTSecret == "change-me-in-production" {
		return fmt.Errorf("JWT_SECRET is set to the insecure default; set a strong secret or set ALLOW_INSECURE_DEFAULTS=true for local dev")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET is too short (%d chars); minimum 32 characters required", len(c.JWTSecret))
	}
	return nil
}

// DSN returns the PostgreSQL connection string, preferring DATABASE_URL if set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// ParsedStartingBalance returns STARTING_BALANCE as a decimal.
func (c *Config) ParsedStartingBalance() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.StartingBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse STARTING_BALANCE %q: %w", c.StartingBalance, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("STARTING_BALANCE must not be negative, got %s", d)
	}
	return d, nil
}

// ParsedTopUpAmount returns TOPUP_AMOUNT as a decimal.
func (c *Config) ParsedTopUpAmount() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.TopUpAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse TOPUP_AMOUNT %q: %w", c.TopUpAmount, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("TOPUP_AMOUNT must be positive, got %s", d)
	}
	return d, nil
}
