// Package config provides configuration for the Shelfmark demo binary with
// support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shelfmarkapp/shelfmark/internal/validation"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Seed   SeedConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `json:"environment" validate:"required,oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string `json:"level"  validate:"required,oneof=debug info warn warning error"`
	Format string `json:"format" validate:"omitempty,oneof=json pretty"`
}

// SeedConfig controls the fixture catalog loaded at startup.
type SeedConfig struct {
	// Enabled loads the demo fixture records before the listing is rendered.
	Enabled bool
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig(args []string) (*Config, error) {
	flags, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(flags.envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:  getConfigValue(flags.logLevel, "LOG_LEVEL", "info"),
			Format: getConfigValue(flags.logFormat, "LOG_FORMAT", ""),
		},
		Seed: SeedConfig{
			Enabled: getBoolConfigValue(flags.seed, "SEED", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all config values are present and valid.
func (c *Config) Validate() error {
	v := validation.New()
	if err := v.Validate(c.App); err != nil {
		return err
	}
	return v.Validate(c.Logger)
}

// flagValues holds raw command-line flag values before precedence is applied.
type flagValues struct {
	env       string
	logLevel  string
	logFormat string
	seed      string
	envFile   string
}

// parseFlags parses command-line flags from args (not including the program
// name). A fresh FlagSet keeps LoadConfig callable more than once in tests.
func parseFlags(args []string) (*flagValues, error) {
	fs := flag.NewFlagSet("shelfmark", flag.ContinueOnError)
	vals := &flagValues{}

	fs.StringVar(&vals.env, "env", "", "Environment (development, staging, production)")
	fs.StringVar(&vals.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&vals.logFormat, "log-format", "", "Log format (json, pretty)")
	fs.StringVar(&vals.seed, "seed", "", "Load the demo fixture catalog (default: true)")
	fs.StringVar(&vals.envFile, "env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return vals, nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		// Environment variables already set take precedence.
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}
