package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("NOTION_CLIENT_ID", "")
	t.Setenv("NOTION_CLIENT_SECRET", "")
	t.Setenv("NOTION_REDIRECT_URI", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Equal(t, "http://localhost:8080/api/notion/callback", cfg.NotionRedirectURI)
}

func TestLoadRedirectDefaultTracksPort(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("NOTION_REDIRECT_URI", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:9000/api/notion/callback", cfg.NotionRedirectURI)
}

func TestLoadExplicitValuesWin(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("NOTION_CLIENT_ID", "cid")
	t.Setenv("NOTION_CLIENT_SECRET", "csecret")
	t.Setenv("NOTION_REDIRECT_URI", "https://example.com/callback")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "cid", cfg.NotionClientID)
	assert.Equal(t, "csecret", cfg.NotionClientSecret)
	assert.Equal(t, "https://example.com/callback", cfg.NotionRedirectURI)
}
