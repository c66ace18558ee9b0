package config

import (
	"strings"
	"time"
)

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
	Port string `mapstructure:"port"`
}

// Addr returns the listen address for Port, accepting both "8000" and ":8000".
func (a AppConfig) Addr() string {
	if strings.Contains(a.Port, ":") {
		return a.Port
	}
	return ":" + a.Port
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type UploadConfig struct {
	MaxSize int `mapstructure:"max_size"`
}

type RateLimitConfig struct {
	Max    int           `mapstructure:"max"`
	Window time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

type PromptsConfig struct {
	File string `mapstructure:"file"`
}
