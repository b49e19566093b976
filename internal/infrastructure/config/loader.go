package config

import (
	"errors"
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

// EnvPrefix is the prefix of environment variables overriding config values
const EnvPrefix = "CFGSTORE"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	cfg, err := LoadFromViper(v)
	if err != nil {
		return nil, err
	}
	cfg.Environment = env
	return cfg, nil
}

// LoadFromViper reads the configuration v points at, applying defaults and
// environment overrides. A missing config file is not an error.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	processDurations(&config)

	if _, err := config.Logger.Thresholds(); err != nil {
		return nil, fmt.Errorf("invalid logger configuration: %w", err)
	}

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

// setDefaults sets default values for every setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", Development)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8830)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Both sinks start disabled until configured
	v.SetDefault("logger.consoleLevel", "none")
	v.SetDefault("logger.syslogLevel", "none")
	v.SetDefault("logger.syslogTag", "cfgstored")

	v.SetDefault("validation.firstErrorOnly", false)
}

// getEnvironment determines the environment to use based on CFGSTORE_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides gives the short log variables priority over config values
func processEnvOverrides(v *viper.Viper) {
	if level := os.Getenv(EnvPrefix + "_LOG_CONSOLE"); level != "" {
		v.Set("logger.consoleLevel", level)
	}
	if level := os.Getenv(EnvPrefix + "_LOG_SYSLOG"); level != "" {
		v.Set("logger.syslogLevel", level)
	}
	if port := os.Getenv(EnvPrefix + "_PORT"); port != "" {
		v.Set("server.port", port)
	}
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
}
