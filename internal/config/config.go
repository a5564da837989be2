package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	LLM       LLMConfig
	Generator GeneratorConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port        string
	Env         string
	APIPrefix   string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Driver     string
	URL        string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SQLitePath string
	LogSQL     bool
}

type LLMConfig struct {
	Provider        string
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
}

type GeneratorConfig struct {
	StrictSchema bool
}

type LogConfig struct {
	Mode string
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ProviderGemini = "gemini"
	ProviderADK    = "adk"
)

// Load reads .env when present and falls back to defaults for anything unset.
// The returned bool reports whether a .env file was found.
func Load() (*Config, bool) {
	envFileFound := godotenv.Load() == nil

	env := getEnv("ENV", "development")

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8001"),
			Env:         env,
			APIPrefix:   getEnv("API_PREFIX", "/api"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			URL:        getEnv("DATABASE_URL", ""),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "career_mentor"),
			SQLitePath: getEnv("SQLITE_PATH", "career_mentor.db"),
			LogSQL:     getEnvAsBool("DB_LOG_SQL", env == "development"),
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
			APIKey:          getEnv("GEMINI_API_KEY", getEnv("LLM_API_KEY", "")),
			Model:           getEnv("LLM_MODEL", "gemini-2.5-flash"),
			Temperature:     getEnvAsFloat32("LLM_TEMPERATURE", 0.7),
			MaxOutputTokens: int32(getEnvAsInt("LLM_MAX_OUTPUT_TOKENS", 8192)),
			Timeout:         getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		Generator: GeneratorConfig{
			StrictSchema: getEnvAsBool("ROADMAP_STRICT_SCHEMA", true),
		},
		Log: LogConfig{
			Mode: getEnv("LOG_MODE", env),
		},
	}, envFileFound
}

// GetDatabaseDSN returns DATABASE_URL when set, otherwise a DSN assembled
// from the individual settings for the configured driver.
func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	if c.Database.Driver == DriverSQLite {
		return c.Database.SQLitePath
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
