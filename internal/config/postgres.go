package config

import (
	"fmt"
)

// PostgresConfig holds configuration for the results database connection
type PostgresConfig struct {
	User     string `validate:"required"`
	Password string `validate:"required"`
	Database string `validate:"required"`
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	SSLMode  string `validate:"oneof=disable require verify-ca verify-full"`
}

var postgresEnvKeys = map[string]string{
	"User":     "POSTGRES_USER",
	"Password": "POSTGRES_PASSWORD",
	"Database": "POSTGRES_DB",
	"Host":     "POSTGRES_HOSTNAME",
	"Port":     "POSTGRES_PORT",
	"SSLMode":  "POSTGRES_SSLMODE",
}

// LoadPostgresConfig loads PostgreSQL configuration from environment variables
func LoadPostgresConfig(getenv func(string) string) (*PostgresConfig, error) {
	config := &PostgresConfig{
		User:     getenv("POSTGRES_USER"),
		Password: getenv("POSTGRES_PASSWORD"),
		Database: getenv("POSTGRES_DB"),
		Host:     getenv("POSTGRES_HOSTNAME"),
		Port:     getenv("POSTGRES_PORT"),
		SSLMode:  getenv("POSTGRES_SSLMODE"),
	}

	if config.Port == "" {
		config.Port = "5432"
	}
	if config.SSLMode == "" {
		config.SSLMode = "disable"
	}

	if err := validateStruct(config, postgresEnvKeys); err != nil {
		return nil, err
	}

	return config, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}
