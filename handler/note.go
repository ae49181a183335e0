package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voicenotes/backend/apierror"
	"github.com/voicenotes/backend/model"
)

// CreateNote handles POST /api/create-note: polish the transcription,
// generate a title, then publish both as a Notion page using the caller's
// own credentials. A failure at any stage aborts the rest; no partial
// success is reported.
func (h *Handler) CreateNote(c *fiber.Ctx) error {
	log := h.requestLog(c, "create-note")

	var req model.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apierror.InvalidBody()
	}
	if req.Transcription == "" {
		return apierror.MissingField("Transcription text is required")
	}
	if req.NotionAPIKey == "" {
		return apierror.MissingField("Notion API key is required")
	}
	if req.NotionDatabaseID == "" {
		return apierror.MissingField("Notion Database ID is required")
	}

	ctx := c.UserContext()

	log.Info("polishing transcription")
	polished, err := h.polisher.Polish(ctx, req.Transcription)
	if err != nil {
		return err
	}

	title, err := h.polisher.Title(ctx, polished)
	if err != nil {
		return err
	}

	log.WithField("title", title).Info("creating notion page")
	pageURL, err := h.notion.CreatePage(ctx, req.NotionAPIKey, req.NotionDatabaseID, title, polished)
	if err != nil {
		return err
	}

	log.Info("notion page created")
	return c.JSON(model.CreateNoteResponse{
		Success:       true,
		NotionPageURL: pageURL,
		Title:         title,
		PolishedText:  polished,
	})
}
