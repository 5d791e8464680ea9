package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Feed struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"feed" yaml:"feed"`

	Reconciliation struct {
		// RetailIndividualID is the counterparty id that marks walk-in retail
		// operations. Empty means the workspace has no retail counterparty.
		RetailIndividualID string `mapstructure:"retail_individual_id" yaml:"retail_individual_id"`
		// AsOf overrides "today" for the current liability figures
		// (YYYY-MM-DD). Empty means the wall clock.
		AsOf string `mapstructure:"as_of" yaml:"as_of"`
	} `mapstructure:"reconciliation" yaml:"reconciliation"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.dealrecon")
	v.AddConfigPath(".dealrecon")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DEALRECON")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars; a broken config file is
			// worth a warning, not a refusal to run.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("feed.delimiter", ",")

	v.SetDefault("reconciliation.retail_individual_id", "")
	v.SetDefault("reconciliation.as_of", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.Feed.Delimiter) != 1 {
		return fmt.Errorf("feed delimiter must be a single character, got: %s", config.Feed.Delimiter)
	}

	return nil
}

// DelimiterRune returns the configured feed delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	if c.Feed.Delimiter == "" {
		return ','
	}
	return []rune(c.Feed.Delimiter)[0]
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
