package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/voicenotes/backend/apierror"
	"github.com/voicenotes/backend/intake"
	"github.com/voicenotes/backend/model"
)

// Transcribe handles POST /api/transcribe: validate and stage the upload,
// send it to the speech-to-text service, return the text. The staged file is
// removed on every exit path once it exists.
func (h *Handler) Transcribe(c *fiber.Ctx) error {
	log := h.requestLog(c, "transcribe")

	fh, err := c.FormFile("audio")
	if err != nil {
		return apierror.NoAudioFile()
	}

	up, cleanup, err := intake.Store(fh, h.tmpDir)
	if err != nil {
		return err
	}
	defer func() {
		// Cleanup failures are logged, never surfaced to the caller.
		if err := cleanup(); err != nil {
			log.WithField("error", err.Error()).Warn("failed to remove staged audio file")
		}
	}()

	log.WithFields(logrus.Fields{
		"file":       up.Name,
		"size_bytes": up.Size,
	}).Info("transcribing upload")

	text, err := h.transcriber.Transcribe(c.UserContext(), up.Path)
	if err != nil {
		return err
	}

	log.Info("transcription successful")
	return c.JSON(model.TranscribeResponse{Success: true, Transcription: text})
}
