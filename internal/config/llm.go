package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/submitme/internal/model"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o",
	ProviderGemini:    "gemini-2.5-flash",
	ProviderAnthropic: "claude-sonnet-4-20250514",
}

type LLMConfig struct {
	Provider string        `mapstructure:"provider"`
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type APIKeyConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// resolve picks the provider-specific key when no explicit LLM_API_KEY was
// given, fills in the default model and checks that a key is present.
func (c *LLMConfig) resolve(keys map[string]string) error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	defaultModel, ok := defaultModels[c.Provider]
	if !ok {
		return &model.ConfigError{Key: "LLM_PROVIDER", Err: fmt.Errorf("unknown provider %q", c.Provider)}
	}

	if strings.TrimSpace(c.Model) == "" {
		c.Model = defaultModel
	}

	c.APIKey = strings.TrimSpace(c.APIKey)
	if c.APIKey == "" {
		c.APIKey = strings.TrimSpace(keys[c.Provider])
	}
	if c.APIKey == "" {
		return &model.ConfigError{
			Key: strings.ToUpper(c.Provider) + "_API_KEY",
			Err: errors.New("api key is required"),
		}
	}

	if c.Timeout <= 0 {
		return &model.ConfigError{Key: "LLM_TIMEOUT", Err: fmt.Errorf("must be positive, got %s", c.Timeout)}
	}
	return nil
}
