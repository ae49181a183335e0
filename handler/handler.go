// Package handler wires the HTTP endpoints to the transcription, polishing
// and publishing pipelines.
package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/voicenotes/backend/config"
	"github.com/voicenotes/backend/llm"
	"github.com/voicenotes/backend/logger"
	"github.com/voicenotes/backend/notion"
	"github.com/voicenotes/backend/stt"
)

// Publisher is the slice of the Notion client the handlers use.
type Publisher interface {
	CreatePage(ctx context.Context, apiKey, databaseID, title, content string) (string, error)
	ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (*notion.TokenResponse, error)
}

type Handler struct {
	cfg         *config.Config
	log         *logger.Logger
	transcriber stt.Transcriber
	polisher    llm.Polisher
	notion      Publisher
	tmpDir      string
}

func New(cfg *config.Config, log *logger.Logger, transcriber stt.Transcriber, polisher llm.Polisher, publisher Publisher, tmpDir string) *Handler {
	return &Handler{
		cfg:         cfg,
		log:         log,
		transcriber: transcriber,
		polisher:    polisher,
		notion:      publisher,
		tmpDir:      tmpDir,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Health)
	app.Post("/api/transcribe", h.Transcribe)
	app.Post("/api/create-note", h.CreateNote)
	app.Get("/api/notion/callback", h.NotionCallback)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("Voice notes backend is running")
}

func (h *Handler) requestLog(c *fiber.Ctx, name string) *logrus.Entry {
	entry := h.log.WithField("handler", name)
	if id := logger.RequestID(c); id != "" {
		entry = entry.WithField(logger.RequestIDKey, id)
	}
	return entry
}
