package config

import (
	"errors"
	"fmt"
)

// Validate checks that every enabled feature has the configuration it needs.
func (c *Config) Validate() error {
	if c.Database.Primary.DSN == "" {
		return errors.New("database.primary.DSN is required")
	}
	// database.vector.DSN is optional; it falls back to the primary DSN.

	if c.Redis.Address == "" {
		return errors.New("redis.address is required")
	}

	if c.Worker.Concurrency <= 0 {
		return errors.New("worker.concurrency must be a positive integer")
	}
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue '%s' must be positive", name)
		}
	}

	// Fetching needs at least one source.
	if c.NewsAPI.APIKey == "" && len(c.RSS.Feeds) == 0 {
		return errors.New("either newsapi.api_key or rss.feeds must be configured")
	}
	for _, topic := range c.NewsAPI.Topics {
		if topic == "" {
			return errors.New("newsapi.topics contains an empty topic")
		}
	}

	if c.Summarization.Enabled {
		switch c.Summarization.Provider {
		case "openai":
			if c.Summarization.OpenaiAPIKey == "" {
				return errors.New("summarization.openai_api_key is required for the openai provider")
			}
		case "gemini":
			if c.Summarization.GoogleAPIKey == "" {
				return errors.New("summarization.google_api_key is required for the gemini provider")
			}
		default:
			return fmt.Errorf("unknown summarization provider %q", c.Summarization.Provider)
		}
		if c.Summarization.Model == "" {
			return errors.New("summarization.model is required when summarization is enabled")
		}
	}

	return nil
}
