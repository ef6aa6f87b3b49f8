// Package config loads gitscribe settings from an optional config
// file, environment variables, and built-in defaults.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/sprite-ai/gitscribe/internal/prompt"
)

// EnvAPIKey is the credential for the completion service. Its absence
// is a fatal precondition, checked before any other action.
const EnvAPIKey = "OPENAI_API_KEY"

// ErrMissingAPIKey reports the missing generation-service credential.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " environment variable not set")

// Config holds the tunable settings. All fields have working defaults;
// a config file is never required.
type Config struct {
	Model             string  `mapstructure:"model"`
	Lowercase         bool    `mapstructure:"lowercase"`
	CommitTemperature float64 `mapstructure:"commit_temperature"`
	BranchTemperature float64 `mapstructure:"branch_temperature"`
	PRTemperature     float64 `mapstructure:"pr_temperature"`
}

// Load reads configuration from .gitscribe.yaml (current directory,
// then $HOME), overridden by GITSCRIBE_* environment variables.
// A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName(".gitscribe")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("GITSCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model", "gpt-4o-mini")
	v.SetDefault("lowercase", true)
	v.SetDefault("commit_temperature", 0.3)
	v.SetDefault("branch_temperature", 0.5)
	v.SetDefault("pr_temperature", 0.5)
}

// Default returns the built-in configuration without touching the
// filesystem or environment.
func Default() Config {
	return Config{
		Model:             "gpt-4o-mini",
		Lowercase:         true,
		CommitTemperature: 0.3,
		BranchTemperature: 0.5,
		PRTemperature:     0.5,
	}
}

// BaseTemperature returns the starting sampling temperature for a
// negotiation over the given artifact kind.
func (c Config) BaseTemperature(kind prompt.Kind) float64 {
	switch kind {
	case prompt.CommitMessage:
		return c.CommitTemperature
	case prompt.BranchName:
		return c.BranchTemperature
	default:
		return c.PRTemperature
	}
}

// APIKey reads the generation-service credential from the process
// environment.
func APIKey() (string, error) {
	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}
