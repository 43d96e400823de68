package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Primary struct {
			DSN string
		}
		// Vector holds the DSN for the Postgres topic-vector store (may be
		// the same database as Primary).
		Vector struct {
			DSN string `mapstructure:"DSN"`
		}
	}

	NewsAPI struct {
		APIKey   string   `mapstructure:"api_key"`
		BaseURL  string   `mapstructure:"base_url"`
		ProxyURL string   `mapstructure:"proxy_url"`
		PageSize int      `mapstructure:"page_size"`
		Country  string   `mapstructure:"country"`
		Topics   []string `mapstructure:"topics"`
	} `mapstructure:"newsapi"`

	RSS struct {
		// Feeds are fallback sources used when the news API is unavailable
		// or unconfigured.
		Feeds []string `mapstructure:"feeds"`
	} `mapstructure:"rss"`

	Scraper struct {
		Enabled bool `mapstructure:"enabled"`
		// MinBodyWords: bodies shorter than this trigger a full-text scrape.
		MinBodyWords int `mapstructure:"min_body_words"`
	} `mapstructure:"scraper"`

	Summarization struct {
		Enabled  bool   `mapstructure:"enabled"`
		Provider string `mapstructure:"provider"` // "openai" or "gemini"
		Model    string `mapstructure:"model"`
		Prompt   string `mapstructure:"prompt"`

		OpenaiAPIKey string `mapstructure:"openai_api_key"`
		GoogleAPIKey string `mapstructure:"google_api_key"`
	} `mapstructure:"summarization"`

	Auth struct {
		SessionTTLHours int `mapstructure:"session_ttl_hours"`
		BcryptCost      int `mapstructure:"bcrypt_cost"`
	} `mapstructure:"auth"`

	Recommend struct {
		// HistoryWindow is how many recent reads feed the profile vector.
		HistoryWindow int `mapstructure:"history_window"`
		DefaultLimit  int `mapstructure:"default_limit"`
	} `mapstructure:"recommend"`

	Redis struct {
		Address  string
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	}
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	// Secrets come from env vars without a prefix so deployments can reuse
	// the conventional names.
	viper.BindEnv("newsapi.api_key", "NEWSAPI_API_KEY")
	viper.BindEnv("summarization.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("summarization.google_api_key", "GEMINI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(cfg *Config) {
	if cfg.NewsAPI.BaseURL == "" {
		cfg.NewsAPI.BaseURL = "https://newsapi.org/v2"
	}
	if cfg.NewsAPI.PageSize <= 0 {
		cfg.NewsAPI.PageSize = 20
	}
	if cfg.NewsAPI.Country == "" {
		cfg.NewsAPI.Country = "us"
	}
	if cfg.Scraper.MinBodyWords <= 0 {
		cfg.Scraper.MinBodyWords = 60
	}
	if cfg.Auth.SessionTTLHours <= 0 {
		cfg.Auth.SessionTTLHours = 72
	}
	if cfg.Recommend.HistoryWindow <= 0 {
		cfg.Recommend.HistoryWindow = 25
	}
	if cfg.Recommend.DefaultLimit <= 0 {
		cfg.Recommend.DefaultLimit = 10
	}
	if cfg.Worker.Concurrency <= 0 {
		cfg.Worker.Concurrency = 5
	}
	if len(cfg.Worker.Queues) == 0 {
		cfg.Worker.Queues = map[string]int{"fetch": 6, "default": 3}
	}
}
