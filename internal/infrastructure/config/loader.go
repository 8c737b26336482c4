package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables override config file values
	v.SetEnvPrefix("PR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("rowStore.port", 5432)
	v.SetDefault("rowStore.sslMode", "require")
	v.SetDefault("rowStore.maxOpenConns", 25)
	v.SetDefault("rowStore.maxIdleConns", 10)
	v.SetDefault("rowStore.connMaxLifetime", 30) // minutes
	v.SetDefault("rowStore.connMaxIdleTime", 15) // minutes
	v.SetDefault("rowStore.queryTimeout", 5)     // seconds

	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "prompt-assets")

	v.SetDefault("reward.watchDuration", 8)  // seconds
	v.SetDefault("reward.claimAmount", 10)
	v.SetDefault("reward.autoCloseDelay", 2) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)
}

// getEnvironment determines the environment to use based on PR_ENV
func getEnvironment() string {
	env := os.Getenv("PR_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"PR_DB_HOST":              "rowStore.host",
		"PR_DB_PORT":              "rowStore.port",
		"PR_DB_USERNAME":          "rowStore.username",
		"PR_DB_PASSWORD":          "rowStore.password",
		"PR_DB_NAME":              "rowStore.database",
		"PR_DB_SSL_MODE":          "rowStore.sslMode",
		"PR_SERVER_HOST":          "server.host",
		"PR_SERVER_PORT":          "server.port",
		"PR_IDENTITY_BASE_URL":    "identity.baseUrl",
		"PR_IDENTITY_API_KEY":     "identity.apiKey",
		"PR_IDENTITY_REDIRECT_TO": "identity.redirectTo",
		"PR_STORAGE_ENDPOINT":     "storage.endpoint",
		"PR_STORAGE_REGION":       "storage.region",
		"PR_STORAGE_ACCESS_KEY":   "storage.accessKey",
		"PR_STORAGE_SECRET_KEY":   "storage.secretKey",
		"PR_STORAGE_BUCKET":       "storage.bucket",
		"PR_STORAGE_PUBLIC_URL":   "storage.publicBaseUrl",
		"PR_LOGGER_LEVEL":         "logger.level",
	}
	for envName, key := range overrides {
		if value := os.Getenv(envName); value != "" {
			v.Set(key, value)
		}
	}
}

// processDurations converts duration fields from their raw values
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.RowStore.ConnMaxLifetime = time.Duration(config.RowStore.ConnMaxLifetime) * time.Minute
	config.RowStore.ConnMaxIdleTime = time.Duration(config.RowStore.ConnMaxIdleTime) * time.Minute
	config.RowStore.QueryTimeout = time.Duration(config.RowStore.QueryTimeout) * time.Second

	config.Reward.WatchDuration = time.Duration(config.Reward.WatchDuration) * time.Second
	config.Reward.AutoCloseDelay = time.Duration(config.Reward.AutoCloseDelay) * time.Second
}
