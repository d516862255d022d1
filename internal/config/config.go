package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"loglevel"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR"`
	LogsDir string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// Load loads configuration with precedence environment > config file >
// built-in defaults.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("DQ", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Paths.DataDir == "" {
		envConfig.Paths.DataDir = fileConfig.Paths.DataDir
	}
	if envConfig.Paths.LogsDir == "" {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	return envConfig
}

// applyDefaults fills the fields neither the environment nor the config file
// set.
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "both"
	}
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = "data"
	}
	if c.Paths.LogsDir == "" {
		c.Paths.LogsDir = "logs"
	}
}

// Validate checks the configuration with struct tags plus the custom
// loglevel validation.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", isLogLevel); err != nil {
		return fmt.Errorf("failed to register loglevel validation: %w", err)
	}
	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}

// isLogLevel accepts the levels understood by the logger.
func isLogLevel(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

// getConfigFilePath returns the config file location, overridable for tests
// via DQ_CONFIG_FILE.
func getConfigFilePath() string {
	if path := os.Getenv("DQ_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}
