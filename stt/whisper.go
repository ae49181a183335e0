// Package stt turns recorded audio into text via a speech-to-text service.
package stt

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/voicenotes/backend/apierror"
)

// Transcriber converts a staged audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// WhisperClient transcribes audio with the OpenAI Whisper API. Transcription
// is English-only for now.
type WhisperClient struct {
	apiKey   string
	client   *openai.Client
	language string
}

func NewWhisperClient(apiKey string) *WhisperClient {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &WhisperClient{apiKey: apiKey, client: client, language: "en"}
}

// Transcribe sends the file to Whisper once, with no retry. A missing API
// key fails before any network call is made.
func (w *WhisperClient) Transcribe(ctx context.Context, path string) (string, error) {
	if w.apiKey == "" {
		return "", apierror.Misconfigured("OpenAI API key is not configured")
	}

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: path,
		Language: w.language,
	})
	if err != nil {
		return "", wrapError(err)
	}
	return resp.Text, nil
}

func wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apierror.TranscriptionFailed(apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return apierror.TranscriptionFailed(reqErr.HTTPStatusCode, reqErr.Error())
	}
	return apierror.TranscriptionFailed(0, err.Error())
}
