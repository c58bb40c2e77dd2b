package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Search providers
const (
	ProviderGemini     = "gemini"
	ProviderNewsAPI    = "newsapi"
	ProviderGoogleNews = "googlenews"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `env:"PORT" envDefault:"8080" json:"port"`
	Host string `env:"HOST" envDefault:"0.0.0.0" json:"host"`

	// Search backend: "gemini", "newsapi" or "googlenews"
	SearchProvider string `env:"SEARCH_PROVIDER" envDefault:"gemini" json:"search_provider"`

	// Gemini API settings
	GeminiAPIKey  string `env:"GEMINI_API_KEY" json:"-"` // Don't expose in JSON
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview" json:"gemini_model"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" json:"-"`

	// NewsAPI settings
	NewsAPIKey     string `env:"NEWSAPI_KEY" json:"-"`
	NewsAPIBaseURL string `env:"NEWSAPI_BASE_URL" json:"-"`

	// Google News RSS settings
	GoogleNewsBaseURL string `env:"GOOGLENEWS_BASE_URL" json:"-"`

	// Slack settings
	SlackBotToken string `env:"SLACK_BOT_TOKEN" json:"-"`
	SlackChannel  string `env:"SLACK_CHANNEL" envDefault:"#just-news" json:"slack_channel"`
	SlackBaseURL  string `env:"SLACK_BASE_URL" json:"-"`

	// Digest settings
	DigestKeywordsRaw string   `env:"DIGEST_KEYWORDS" json:"-"`
	DigestKeywords    []string `json:"digest_keywords"`
	DigestSchedule    string   `env:"DIGEST_SCHEDULE" envDefault:"0 8 * * *" json:"digest_schedule"`

	// Bearer token for POST /api/v1/digest; empty disables the endpoint
	DigestTriggerToken string `env:"DIGEST_TRIGGER_TOKEN" json:"-"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" json:"log_level"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" json:"log_format"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, &ConfigError{Field: "env", Message: err.Error()}
	}

	if config.GeminiAPIKey == "" {
		config.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")
	}
	config.SearchProvider = strings.ToLower(strings.TrimSpace(config.SearchProvider))
	config.DigestKeywords = parseStringSlice(config.DigestKeywordsRaw)

	return config, config.validate()
}

// DigestEnabled reports whether scheduled keyword digests are configured
func (c *Config) DigestEnabled() bool {
	return len(c.DigestKeywords) > 0
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	switch c.SearchProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return &ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key is required"}
		}
	case ProviderNewsAPI:
		if c.NewsAPIKey == "" {
			return &ConfigError{Field: "NEWSAPI_KEY", Message: "NewsAPI key is required"}
		}
	case ProviderGoogleNews:
	default:
		return &ConfigError{Field: "SEARCH_PROVIDER", Message: "unsupported provider: " + c.SearchProvider}
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return &ConfigError{Field: "LOG_FORMAT", Message: "must be text or json"}
	}

	if c.DigestEnabled() {
		if c.SlackBotToken == "" {
			return &ConfigError{Field: "SLACK_BOT_TOKEN", Message: "Slack bot token is required for digests"}
		}
		if !strings.HasPrefix(c.SlackBotToken, "xoxb-") {
			return &ConfigError{Field: "SLACK_BOT_TOKEN", Message: "must start with xoxb-"}
		}
		if _, err := cron.ParseStandard(c.DigestSchedule); err != nil {
			return &ConfigError{Field: "DIGEST_SCHEDULE", Message: err.Error()}
		}
	}
	return nil
}

// parseStringSlice parses comma-separated string into slice
func parseStringSlice(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
