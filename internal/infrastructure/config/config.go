package config

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/logger"
)

// Config holds all configuration for the daemon
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Validation  ValidationConfig `mapstructure:"validation"`
}

// ServerConfig contains diagnostics HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// LoggerConfig contains the per-sink log thresholds
type LoggerConfig struct {
	ConsoleLevel string `mapstructure:"consoleLevel"`
	SyslogLevel  string `mapstructure:"syslogLevel"`
	SyslogTag    string `mapstructure:"syslogTag"`
}

// ValidationConfig contains node validation settings
type ValidationConfig struct {
	FirstErrorOnly bool `mapstructure:"firstErrorOnly"`
}

// Thresholds parses both sink levels
func (c LoggerConfig) Thresholds() (logger.Thresholds, error) {
	console, err := core.ParseSeverity(c.ConsoleLevel)
	if err != nil {
		return logger.Thresholds{}, fmt.Errorf("logger.consoleLevel: %w", err)
	}
	syslog, err := core.ParseSeverity(c.SyslogLevel)
	if err != nil {
		return logger.Thresholds{}, fmt.Errorf("logger.syslogLevel: %w", err)
	}
	return logger.Thresholds{Console: console, Syslog: syslog}, nil
}
