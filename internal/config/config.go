package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration. The API only verifies tokens; they are
// issued by the identity provider that fronts this service.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig externalizes the statutory rates used by the calculation
// services so they can change per fiscal year without code edits.
type PayrollConfig struct {
	// Annual income exemption; the monthly withholding threshold is this / 12.
	TaxAnnualExemption decimal.Decimal
	// Flat withholding rate applied above the threshold. Simplified placeholder
	// for the progressive BIR table.
	TaxRate decimal.Decimal
	// GSIS personal share as a fraction of monthly salary.
	GSISRate decimal.Decimal
	// Divisor used to derive a daily rate from a monthly salary.
	WorkingDaysPerMonth decimal.Decimal
	// Loyalty award: base amount at 10 years, increment per 5 years after.
	LoyaltyBase      decimal.Decimal
	LoyaltyIncrement decimal.Decimal
	// Terminal Leave Benefit constant factor.
	TLBFactor decimal.Decimal
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "lgu-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Payroll rates
	payroll, err := loadPayroll()
	if err != nil {
		return nil, err
	}
	config.Payroll = payroll

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayroll() (PayrollConfig, error) {
	var cfg PayrollConfig
	fields := []struct {
		key      string
		fallback string
		dst      *decimal.Decimal
	}{
		{"TAX_ANNUAL_EXEMPTION", "250000", &cfg.TaxAnnualExemption},
		{"TAX_RATE", "0.10", &cfg.TaxRate},
		{"GSIS_RATE", "0.09", &cfg.GSISRate},
		{"WORKING_DAYS_PER_MONTH", "22", &cfg.WorkingDaysPerMonth},
		{"LOYALTY_BASE_AMOUNT", "10000", &cfg.LoyaltyBase},
		{"LOYALTY_INCREMENT_AMOUNT", "5000", &cfg.LoyaltyIncrement},
		{"TLB_FACTOR", "0.0481927", &cfg.TLBFactor},
	}
	for _, f := range fields {
		val, err := decimal.NewFromString(getEnv(f.key, f.fallback))
		if err != nil {
			return PayrollConfig{}, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = val
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	if c.Payroll.TaxRate.IsNegative() || c.Payroll.GSISRate.IsNegative() {
		return fmt.Errorf("rates must be non-negative")
	}
	if !c.Payroll.WorkingDaysPerMonth.IsPositive() {
		return fmt.Errorf("WORKING_DAYS_PER_MONTH must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
