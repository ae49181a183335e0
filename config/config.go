// Package config loads process configuration from environment variables.
// Required credentials are allowed to be absent at startup: the server still
// serves every endpoint and the affected pipelines report a configuration
// error per request instead.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port               string
	OpenAIAPIKey       string
	NotionClientID     string
	NotionClientSecret string
	NotionRedirectURI  string
}

func Load() *Config {
	port := envOr("PORT", "8080")

	redirectURI := os.Getenv("NOTION_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = fmt.Sprintf("http://localhost:%s/api/notion/callback", port)
	}

	return &Config{
		Port:               port,
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		NotionClientID:     os.Getenv("NOTION_CLIENT_ID"),
		NotionClientSecret: os.Getenv("NOTION_CLIENT_SECRET"),
		NotionRedirectURI:  redirectURI,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
