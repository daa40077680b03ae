// Package bobi holds the top-level configuration for the demo assistant.
package bobi

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bobi-voice/bobi/pkg/errorsx"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	LogFormat   string          `mapstructure:"log_format"`
	Privacy     PrivacyConfig   `mapstructure:"privacy"`
	Agent       AgentConfig     `mapstructure:"agent"`
	Providers   ProvidersConfig `mapstructure:"providers"`
}

type PrivacyConfig struct {
	RedactPII bool `mapstructure:"redact_pii"`
}

// AgentConfig carries the persona and base instructions prepended to the
// generated tool prompt.
type AgentConfig struct {
	Persona    string `mapstructure:"persona"`
	BasePrompt string `mapstructure:"base_prompt"`
}

// ProviderConfig is a base provider block: free-form settings the provider
// validates itself.
type ProviderConfig struct {
	Settings map[string]any `mapstructure:"settings"`
}

// OptionalProviderConfig adds an enable switch for providers that need
// credentials the operator may not have.
type OptionalProviderConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Settings map[string]any `mapstructure:"settings"`
}

type ProvidersConfig struct {
	TotalObserver ProviderConfig         `mapstructure:"totalobserver"`
	CRM           ProviderConfig         `mapstructure:"crm"`
	Calendar      OptionalProviderConfig `mapstructure:"calendar"`
	Gmail         OptionalProviderConfig `mapstructure:"gmail"`
}

func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("privacy.redact_pii", true)
	v.SetDefault("providers.totalobserver.settings.data_dir", "mock-data")
	v.SetDefault("providers.crm.settings.data_dir", "mock-data")
	v.SetDefault("providers.calendar.enabled", false)
	v.SetDefault("providers.gmail.enabled", false)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errorsx.Wrap(fmt.Errorf("read config: %w", err), errorsx.ReasonConfig)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errorsx.Wrap(fmt.Errorf("unmarshal: %w", err), errorsx.ReasonConfig)
	}
	return cfg, nil
}
