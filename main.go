package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/voicenotes/backend/apierror"
	"github.com/voicenotes/backend/config"
	"github.com/voicenotes/backend/handler"
	"github.com/voicenotes/backend/llm"
	"github.com/voicenotes/backend/logger"
	"github.com/voicenotes/backend/notion"
	"github.com/voicenotes/backend/stt"
)

func main() {
	_ = godotenv.Load() // .env is optional; fall back to process environment

	cfg := config.Load()
	log := logger.New()
	log.WithField("service", "voice-notes-backend").Info("starting service")

	// Missing credentials are not fatal: the server still serves every
	// endpoint and the affected pipelines report the misconfiguration
	// per request.
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY is not set; transcription and polishing will fail")
	}
	if cfg.NotionClientID == "" || cfg.NotionClientSecret == "" {
		log.Warn("Notion OAuth credentials are not set; the OAuth callback will fail")
	}

	app := fiber.New(fiber.Config{
		// Above the 10MB intake limit so oversize uploads reach the
		// validator and get the documented 400 instead of a 413.
		BodyLimit:    25 * 1024 * 1024,
		ErrorHandler: apierror.Handler,
	})
	app.Use(recover.New())
	app.Use(logger.Middleware(log))

	h := handler.New(
		cfg,
		log,
		stt.NewWhisperClient(cfg.OpenAIAPIKey),
		llm.NewOpenAIPolisher(cfg.OpenAIAPIKey),
		notion.NewClient(),
		os.TempDir(),
	)
	h.Register(app)

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("listening")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("server terminated")
	}
}
