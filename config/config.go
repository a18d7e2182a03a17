package config

import (
	"log/slog"
	"os"
)

const defaultGallaboxURL = "https://backend.gallabox.com/api/v1/messages/whatsapp"

type Config struct {
	// OpenAI configuration
	OpenAIAPIKey string
	OpenAIModel  string

	// Gallabox configuration
	GallaboxAPIKey    string
	GallaboxAPISecret string
	GallaboxChannelID string
	GallaboxAPIURL    string

	// Catalog configuration
	CatalogPath string

	// Server configuration
	Port string
}

func LoadConfig() *Config {
	cfg := &Config{
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		GallaboxAPIKey:    getEnv("GALLABOX_API_KEY", ""),
		GallaboxAPISecret: getEnv("GALLABOX_API_SECRET", ""),
		GallaboxChannelID: getEnv("GALLABOX_CHANNEL_ID", ""),
		GallaboxAPIURL:    getEnv("GALLABOX_API_URL", defaultGallaboxURL),
		CatalogPath:       getEnv("CATALOG_PATH", "products.csv"),
		Port:              getEnv("PORT", "8080"),
	}

	// Missing credentials degrade features, they never abort startup
	if cfg.OpenAIAPIKey == "" {
		slog.Warn("OPENAI_API_KEY not set, conversational replies will use the static fallback")
	}
	if !cfg.GallaboxConfigured() {
		slog.Warn("Gallabox credentials not set, outbound delivery disabled")
	}

	return cfg
}

// OpenAIConfigured reports whether the OpenAI credential is present
func (c *Config) OpenAIConfigured() bool {
	return c.OpenAIAPIKey != ""
}

// GallaboxConfigured reports whether all Gallabox credentials are present
func (c *Config) GallaboxConfigured() bool {
	return c.GallaboxAPIKey != "" && c.GallaboxAPISecret != "" && c.GallaboxChannelID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
