// Package apierror defines the error contract shared by every endpoint.
// Each failure in the pipeline is expressed as an *Error carrying the HTTP
// status, a stable kind label and a human-readable message, and the Fiber
// error handler renders all of them as {"error": ..., "message": ...}.
package apierror

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type Error struct {
	Status  int    `json:"-"`
	Kind    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Kind + ": " + e.Message
}

func New(status int, kind, message string) *Error {
	return &Error{Status: status, Kind: kind, Message: message}
}

// NoAudioFile is returned when the multipart form carries no "audio" field.
func NoAudioFile() *Error {
	return New(fiber.StatusBadRequest, "No audio file provided",
		"Please upload an audio file with the key 'audio'")
}

// InvalidFileType rejects uploads whose declared MIME type is not audio.
func InvalidFileType() *Error {
	return New(fiber.StatusBadRequest, "Invalid file type",
		"Invalid file type. Only audio files are allowed.")
}

// FileTooLarge rejects uploads above the intake size limit.
func FileTooLarge() *Error {
	return New(fiber.StatusBadRequest, "File too large",
		"Audio uploads are limited to 10MB")
}

func InvalidBody() *Error {
	return New(fiber.StatusBadRequest, "Invalid request body",
		"Request body must be valid JSON")
}

func MissingField(message string) *Error {
	return New(fiber.StatusBadRequest, "Missing required field", message)
}

// Misconfigured reports a missing server-side credential. The check runs
// before any remote call so a broken deployment never burns a round-trip.
func Misconfigured(message string) *Error {
	return New(fiber.StatusInternalServerError, "Server configuration error", message)
}

// TranscriptionFailed wraps a speech-to-text failure. A non-positive status
// or empty message falls back to generic values.
func TranscriptionFailed(status int, message string) *Error {
	if status <= 0 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = "Failed to transcribe audio"
	}
	return New(status, "Transcription failed", message)
}

// AIProcessingFailed wraps a text-generation failure.
func AIProcessingFailed(status int, message string) *Error {
	if status <= 0 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = "Failed to polish transcription"
	}
	return New(status, "AI processing failed", message)
}

func NotionAuthFailed() *Error {
	return New(fiber.StatusUnauthorized, "Notion authentication failed",
		"Invalid Notion API key. Please check your integration token.")
}

func NotionDatabaseNotFound() *Error {
	return New(fiber.StatusNotFound, "Notion database not found",
		"The specified database ID was not found or the integration doesn't have access to it.")
}

func NotionValidation(message string) *Error {
	if message == "" {
		message = "The database structure may not match expected properties."
	}
	return New(fiber.StatusBadRequest, "Notion validation error", message)
}

func CreateNoteFailed(message string) *Error {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return New(fiber.StatusInternalServerError, "Failed to create note", message)
}

// AuthorizationDenied reports that the user declined the OAuth consent
// screen; message is the error indicator from the redirect query.
func AuthorizationDenied(message string) *Error {
	return New(fiber.StatusBadRequest, "Authorization denied", message)
}

func MissingAuthCode() *Error {
	return New(fiber.StatusBadRequest, "Missing authorization code",
		"No authorization code received from Notion")
}

// TokenExchangeFailed passes the upstream status through to the caller.
func TokenExchangeFailed(status int, message string) *Error {
	if status <= 0 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = "Failed to exchange authorization code"
	}
	return New(status, "Token exchange failed", message)
}

// Handler is the Fiber error handler. It renders *Error values as-is, keeps
// the status of framework errors, and turns everything else into a generic
// 500 so no code path leaves an endpoint without a response.
func Handler(c *fiber.Ctx, err error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(apiErr)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(Error{
			Kind:    http.StatusText(fiberErr.Code),
			Message: fiberErr.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(Error{
		Kind:    "Internal server error",
		Message: "An unexpected error occurred",
	})
}
