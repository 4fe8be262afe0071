// Package cmd wires the application together: configuration, the database
// handle and the composition root that hands out command and query handlers.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// Config carries the process configuration, sourced from the environment
// with an optional .env file for local development.
type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	QueueMonitorEnabled bool
}

// LoadConfig reads the configuration from a .env file if one exists,
// falling back to the process environment.
func LoadConfig() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found, using process environment")
	}

	return Config{
		HTTPPort:            envOrDefault("HTTP_PORT", "8080"),
		DBHost:              envOrDefault("DB_HOST", "localhost"),
		DBPort:              envOrDefault("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           envOrDefault("DB_SSLMODE", "disable"),
		QueueMonitorEnabled: os.Getenv("QUEUE_MONITOR_ENABLED") != "false",
	}
}

// PostgresDSN renders the connection string for the configured database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
