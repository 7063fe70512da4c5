package config

import (
	"time"

	"golang-ai-analyzer/pkg/config"
)

// AI selects the LLM provider.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// OpenAI holds the configuration for the OpenAI API.
type OpenAI struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// YahooFinance holds the configuration for the Yahoo Finance API.
type YahooFinance struct {
	BaseURL             string `mapstructure:"base_url"`
	HomeURL             string `mapstructure:"home_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Telegram holds configuration for the degraded-analysis notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Cache holds configuration for the last-result cache used by report
// re-export.
type Cache struct {
	ResultTTL time.Duration `mapstructure:"result_ttl"`
}

// Config holds the full configuration for the analyzer service.
type Config struct {
	App          config.App    `mapstructure:"app"`
	Logger       config.Logger `mapstructure:"logger"`
	API          config.API    `mapstructure:"api"`
	AI           AI            `mapstructure:"ai"`
	OpenAI       OpenAI        `mapstructure:"openai"`
	Gemini       Gemini        `mapstructure:"gemini"`
	YahooFinance YahooFinance  `mapstructure:"yahoo_finance"`
	Telegram     Telegram      `mapstructure:"telegram"`
	Cache        Cache         `mapstructure:"cache"`
}

// Load loads the analyzer configuration from the given path and applies
// defaults for optional sections.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}

	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "openai"
	}
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-5"
	}
	if cfg.OpenAI.MaxRequestPerMinute == 0 {
		cfg.OpenAI.MaxRequestPerMinute = 30
	}
	if cfg.OpenAI.MaxTokenPerMinute == 0 {
		cfg.OpenAI.MaxTokenPerMinute = 200000
	}
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash"
	}
	if cfg.Gemini.MaxRequestPerMinute == 0 {
		cfg.Gemini.MaxRequestPerMinute = 15
	}
	if cfg.Gemini.MaxTokenPerMinute == 0 {
		cfg.Gemini.MaxTokenPerMinute = 1000000
	}
	if cfg.YahooFinance.BaseURL == "" {
		cfg.YahooFinance.BaseURL = "https://query1.finance.yahoo.com"
	}
	if cfg.YahooFinance.HomeURL == "" {
		cfg.YahooFinance.HomeURL = "https://finance.yahoo.com"
	}
	if cfg.YahooFinance.MaxRequestPerMinute == 0 {
		cfg.YahooFinance.MaxRequestPerMinute = 60
	}
	if cfg.Cache.ResultTTL == 0 {
		cfg.Cache.ResultTTL = time.Hour
	}

	return &cfg, nil
}
