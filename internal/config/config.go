package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// DefaultGatedColumns is used when neither GATED_COLUMNS nor a policy
// file names the columns that enforce dependencies.
const DefaultGatedColumns = "Next Up,Working On"

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBLogLevel     string
	ServerPort     string
	JWTSecret      string
	JWTExpiryHours int
	GatedColumns   string
	PolicyFile     string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5431"),
		DBUser:         getEnv("DB_USER", "taskboard"),
		DBPassword:     getEnv("DB_PASSWORD", "taskboard"),
		DBName:         getEnv("DB_NAME", "taskboard"),
		DBLogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretkey"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		GatedColumns:   getEnv("GATED_COLUMNS", DefaultGatedColumns),
		PolicyFile:     getEnv("DEPENDENCY_POLICY_FILE", ""),
	}
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		result = multierror.Append(result, fmt.Errorf("config: unsupported DB_DRIVER %q (want postgres or sqlite)", c.DBDriver))
	}
	if c.DBName == "" {
		result = multierror.Append(result, fmt.Errorf("config: DB_NAME is required"))
	}
	if c.ServerPort == "" {
		result = multierror.Append(result, fmt.Errorf("config: SERVER_PORT is required"))
	}
	if c.JWTSecret == "" {
		result = multierror.Append(result, fmt.Errorf("config: JWT_SECRET is required"))
	}
	if c.JWTExpiryHours <= 0 {
		result = multierror.Append(result, fmt.Errorf("config: JWT_EXPIRY_HOURS must be positive, got %d", c.JWTExpiryHours))
	}
	switch c.DBLogLevel {
	case "silent", "error", "warn", "info":
	default:
		result = multierror.Append(result, fmt.Errorf("config: unknown DB_LOG_LEVEL %q", c.DBLogLevel))
	}

	return result.ErrorOrNil()
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a number, using %d", key, value, defaultVal)
		return defaultVal
	}
	return n
}
