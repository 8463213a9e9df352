// Package config handles application configuration using Viper.
// Viper supports YAML files, environment variables, and defaults, merged in priority order.
// Configuration is loaded once by the binaries in cmd/ and passed down as structs;
// nothing below cmd/ reads the process environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration struct. Nested structs organize related settings.
// `mapstructure` tags tell Viper how to map YAML/env keys to struct fields.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	CORS   CORSConfig   `mapstructure:"cors"`
	TMDB   TMDBConfig   `mapstructure:"tmdb"`
	Fanart FanartConfig `mapstructure:"fanart"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Images ImagesConfig `mapstructure:"images"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type CORSConfig struct {
	// AllowedOrigins may contain "*" to allow any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type TMDBConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	AccessToken  string        `mapstructure:"access_token"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type FanartConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LLMConfig struct {
	// ProviderOrder controls which model providers are asked and in what order.
	// First provider is primary, rest are fallbacks. Example: ["openrouter", "anthropic"]
	ProviderOrder []string         `mapstructure:"provider_order"`
	OpenRouter    OpenRouterConfig `mapstructure:"openrouter"`
	Anthropic     AnthropicConfig  `mapstructure:"anthropic"`
	RatePerMinute int              `mapstructure:"rate_per_minute"`
	Timeout       time.Duration    `mapstructure:"timeout"`
}

// OpenRouterConfig configures any OpenAI-compatible chat completions endpoint.
type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type ImagesConfig struct {
	DownloadLimitBytes int64         `mapstructure:"download_limit_bytes"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// legacyEnv binds the environment variable names the gateway has always
// accepted, alongside the prefixed GATEWAY_* forms.
var legacyEnv = map[string]string{
	"server.port":            "PORT",
	"tmdb.access_token":      "TMDB_ACCESS_TOKEN",
	"fanart.api_key":         "FANART_API_KEY",
	"llm.openrouter.api_key": "OPENROUTER_API_KEY",
	"llm.anthropic.api_key":  "ANTHROPIC_API_KEY",
}

// Load reads configuration from a YAML file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults, these apply when neither file nor env provides a value
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 10000)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p/original")
	v.SetDefault("tmdb.timeout", 10*time.Second)
	v.SetDefault("fanart.base_url", "https://webservice.fanart.tv/v3")
	v.SetDefault("fanart.timeout", 10*time.Second)
	v.SetDefault("llm.provider_order", []string{"openrouter", "anthropic"})
	v.SetDefault("llm.openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.openrouter.model", "nex-agi/deepseek-v3.1-nex-n1:free")
	v.SetDefault("llm.anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("llm.rate_per_minute", 30)
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("images.download_limit_bytes", 10<<20)
	v.SetDefault("images.timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 14)

	// Read from YAML config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Read config file. A missing file is fine unless one was asked for by path.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Environment variables override everything.
	// GATEWAY_ prefix + nested keys: GATEWAY_SERVER_PORT=9090 → server.port=9090
	v.SetEnvPrefix("GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range legacyEnv {
		prefixed := "GATEWAY_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, name); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the server cannot start with. Missing API keys are
// allowed: the affected provider simply reports itself as unconfigured.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.LLM.RatePerMinute <= 0 {
		return fmt.Errorf("llm.rate_per_minute must be positive, got %d", c.LLM.RatePerMinute)
	}
	if c.Images.DownloadLimitBytes <= 0 {
		return fmt.Errorf("images.download_limit_bytes must be positive")
	}
	return nil
}

// Address returns the listen address string like "0.0.0.0:10000".
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
