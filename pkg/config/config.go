package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Identity sequence configuration
	Identity IdentityConfig `mapstructure:"identity"`

	// Workflow configuration
	Workflow WorkflowConfig `mapstructure:"workflow"`

	// Seed data configuration
	Seed SeedConfig `mapstructure:"seed"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`

	// Monitoring configuration
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// IdentityConfig holds file-number and receipt-number sequence configuration
type IdentityConfig struct {
	PatientPrefix string `mapstructure:"patient_prefix"`
	PatientStart  int64  `mapstructure:"patient_start"`
	ReceiptPrefix string `mapstructure:"receipt_prefix"`
	ReceiptStart  int64  `mapstructure:"receipt_start"`
}

// WorkflowConfig holds clinical workflow configuration
type WorkflowConfig struct {
	AutosaveDelay time.Duration `mapstructure:"autosave_delay"`
}

// SeedConfig holds seed-data loader configuration
type SeedConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// MonitoringConfig holds monitoring configuration
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
	HealthPath  string `mapstructure:"health_path"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/godiya-emr")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Override with environment variables
	overrideWithEnv(&config)

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("server.idle_timeout", 120)

	// Identity defaults
	viper.SetDefault("identity.patient_prefix", "GH-PT-")
	viper.SetDefault("identity.patient_start", 1)
	viper.SetDefault("identity.receipt_prefix", "GH-RCT-")
	viper.SetDefault("identity.receipt_start", 1)

	// Workflow defaults
	viper.SetDefault("workflow.autosave_delay", 5*time.Second)

	// Seed defaults
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("seed.file", "seed.json")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
	viper.SetDefault("monitoring.health_path", "/health")

	// Logging defaults
	viper.SetDefault("log_level", "info")
}

// overrideWithEnv overrides configuration with environment variables
func overrideWithEnv(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if seedFile := os.Getenv("SEED_FILE"); seedFile != "" {
		config.Seed.File = seedFile
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Identity.PatientPrefix == "" {
		return fmt.Errorf("patient file number prefix is required")
	}

	if config.Identity.ReceiptPrefix == "" {
		return fmt.Errorf("receipt number prefix is required")
	}

	if config.Workflow.AutosaveDelay <= 0 {
		return fmt.Errorf("autosave delay must be positive: %v", config.Workflow.AutosaveDelay)
	}

	return nil
}
