package main

import (
	"errors"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"os"
	"strconv"
	"time"
)

type RepositoryKind string

const (
	BoltRepository     RepositoryKind = "bolt"
	PostgresRepository RepositoryKind = "postgres"
	FirebaseRepository RepositoryKind = "firebase"
)

// FirebaseUrlTemplate is filled with the FBASE database name
const FirebaseUrlTemplate = "https://%s-default-rtdb.europe-west1.firebasedatabase.app/cells"

var ConfigError = errors.New("invalid configuration")

// Config is read from the environment, command flags override it
type Config struct {
	ListenAddr string
	Repository RepositoryKind
	LogLevel   string
	GinMode    string

	DatabaseFilePath string
	DatabaseUrl      string

	FirebaseUrl      string
	FirebaseTimeout  time.Duration
	FirebaseRetryMax int

	EvaluationMode     EvaluationMode
	EvaluationTimeout  time.Duration
	EvaluationMaxDepth int
}

func LoadConfig() (*Config, error) {
	var result *multierror.Error
	var err error

	config := &Config{
		ListenAddr:       getEnvOrDefault("LISTEN_ADDR", ":3000"),
		Repository:       RepositoryKind(os.Getenv("REPOSITORY")),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		GinMode:          getEnvOrDefault("GIN_MODE", "release"),
		DatabaseFilePath: getEnvOrDefault("DATABASE_FILEPATH", "sc.db"),
		DatabaseUrl:      os.Getenv("DATABASE_URL"),
		FirebaseUrl:      os.Getenv("FIREBASE_URL"),
	}

	if config.FirebaseUrl == "" && os.Getenv("FBASE") != "" {
		config.FirebaseUrl = fmt.Sprintf(FirebaseUrlTemplate, os.Getenv("FBASE"))
	}

	if config.FirebaseTimeout, err = getEnvDurationOrDefault("FIREBASE_TIMEOUT", 20*time.Second); err != nil {
		result = multierror.Append(result, err)
	}

	if config.FirebaseRetryMax, err = getEnvIntOrDefault("FIREBASE_RETRY_MAX", 2); err != nil {
		result = multierror.Append(result, err)
	}

	if config.EvaluationMode, err = ParseEvaluationMode(os.Getenv("EVALUATION_MODE")); err != nil {
		result = multierror.Append(result, fmt.Errorf("EVALUATION_MODE: %w", err))
	}

	if config.EvaluationTimeout, err = getEnvDurationOrDefault("EVALUATION_TIMEOUT", 5*time.Second); err != nil {
		result = multierror.Append(result, err)
	}

	if config.EvaluationMaxDepth, err = getEnvIntOrDefault("EVALUATION_MAX_DEPTH", DefaultMaxDepth); err != nil {
		result = multierror.Append(result, err)
	}

	if err = result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%w: %w", ConfigError, err)
	}

	return config, nil
}

// Validate checks that the chosen repository has everything it needs
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Repository {
	case BoltRepository:
		if c.DatabaseFilePath == "" {
			result = multierror.Append(result, errors.New("DATABASE_FILEPATH is required for the bolt repository"))
		}
	case PostgresRepository:
		if c.DatabaseUrl == "" {
			result = multierror.Append(result, errors.New("DATABASE_URL is required for the postgres repository"))
		}
	case FirebaseRepository:
		if c.FirebaseUrl == "" {
			result = multierror.Append(result, errors.New("FBASE or FIREBASE_URL is required for the firebase repository"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf(
			"specify the repository using the '-r' flag followed by %s, %s or %s",
			BoltRepository, PostgresRepository, FirebaseRepository,
		))
	}

	if c.EvaluationMaxDepth <= 0 {
		result = multierror.Append(result, errors.New("EVALUATION_MAX_DEPTH should be positive"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ConfigError, err)
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}
	return intValue, nil
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}
	return duration, nil
}
