package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	LLM       LLMConfig       `mapstructure:"llm"`
	OpenAI    APIKeyConfig    `mapstructure:"openai"`
	Gemini    APIKeyConfig    `mapstructure:"gemini"`
	Anthropic APIKeyConfig    `mapstructure:"anthropic"`
	Upload    UploadConfig    `mapstructure:"upload"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
	Prompts   PromptsConfig   `mapstructure:"prompts"`
}

// SetDefaults registers every known key so that environment variables
// (APP_PORT, LLM_PROVIDER, OPENAI_API_KEY, ...) are picked up on Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "SubmitMe API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8000")

	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", "60s")

	v.SetDefault("openai.api_key", "")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("anthropic.api_key", "")

	v.SetDefault("upload.max_size", 10*1024*1024)
	v.SetDefault("rate_limit.max", 50)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("prompts.file", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from v. Defaults must have been registered
// with SetDefaults. A missing API key for the selected provider is an error.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	keys := map[string]string{
		ProviderOpenAI:    cfg.OpenAI.APIKey,
		ProviderGemini:    cfg.Gemini.APIKey,
		ProviderAnthropic: cfg.Anthropic.APIKey,
	}
	if err := cfg.LLM.resolve(keys); err != nil {
		return nil, err
	}

	if cfg.Upload.MaxSize <= 0 {
		return nil, fmt.Errorf("upload.max_size must be positive, got %d", cfg.Upload.MaxSize)
	}

	return &cfg, nil
}
