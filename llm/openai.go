// Package llm polishes raw transcriptions and generates titles with a
// text-generation service.
package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/voicenotes/backend/apierror"
)

const polishingPrompt = `You are a text editor that polishes voice transcriptions. Your task is to:
1. Remove filler words (um, uh, like, you know, etc.)
2. Fix grammar and punctuation
3. Organize the text into clear, well-structured paragraphs
4. Maintain the original meaning and tone
5. Keep the text natural and conversational

Return ONLY the polished text, without any preamble or explanation.`

const titlePrompt = `Based on the following text, generate a concise, descriptive title (maximum 60 characters). Return ONLY the title text, nothing else:`

// DefaultTitle is used when the model returns nothing usable.
const DefaultTitle = "Voice Note"

// titleMaxTokens bounds title generation structurally rather than by
// truncating the result afterwards.
const titleMaxTokens = 20

// Polisher cleans up a transcription and produces a short title for it.
type Polisher interface {
	Polish(ctx context.Context, transcription string) (string, error)
	Title(ctx context.Context, polished string) (string, error)
}

// OpenAIPolisher implements Polisher on top of the chat completions API.
type OpenAIPolisher struct {
	apiKey string
	client *openai.Client
	model  string
}

func NewOpenAIPolisher(apiKey string) *OpenAIPolisher {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &OpenAIPolisher{apiKey: apiKey, client: client, model: openai.GPT4oMini}
}

// Polish removes disfluencies and restructures the text. An empty model
// response falls back to the raw transcription unchanged; a cosmetic gap
// should not fail the whole pipeline.
func (p *OpenAIPolisher) Polish(ctx context.Context, transcription string) (string, error) {
	if p.apiKey == "" {
		return "", apierror.Misconfigured("OpenAI API key is not configured")
	}
	content, err := p.complete(ctx, polishingPrompt, transcription, 0)
	if err != nil {
		return "", err
	}
	if content == "" {
		return transcription, nil
	}
	return content, nil
}

// Title produces a short title for the polished text, falling back to
// DefaultTitle when the model returns nothing.
func (p *OpenAIPolisher) Title(ctx context.Context, polished string) (string, error) {
	if p.apiKey == "" {
		return "", apierror.Misconfigured("OpenAI API key is not configured")
	}
	content, err := p.complete(ctx, titlePrompt, polished, titleMaxTokens)
	if err != nil {
		return "", err
	}
	title := strings.TrimSpace(content)
	if title == "" {
		return DefaultTitle, nil
	}
	return title, nil
}

func (p *OpenAIPolisher) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.7,
	}
	if maxTokens > 0 {
		req.MaxTokens = maxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apierror.AIProcessingFailed(apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return apierror.AIProcessingFailed(reqErr.HTTPStatusCode, reqErr.Error())
	}
	return apierror.AIProcessingFailed(0, err.Error())
}
