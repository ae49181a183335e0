// Package model holds the request and response shapes of the HTTP API.
package model

import "encoding/json"

// TranscribeResponse is the result of a successful transcription.
type TranscribeResponse struct {
	Success       bool   `json:"success"`
	Transcription string `json:"transcription"`
}

// CreateNoteRequest carries the transcription to publish together with the
// caller's own Notion credentials. The API key and database ID belong to the
// caller, not the server; they are used for this request only.
type CreateNoteRequest struct {
	Transcription    string `json:"transcription"`
	NotionAPIKey     string `json:"notionApiKey"`
	NotionDatabaseID string `json:"notionDatabaseId"`
}

// CreateNoteResponse is the terminal artifact of the publish pipeline.
type CreateNoteResponse struct {
	Success       bool   `json:"success"`
	NotionPageURL string `json:"notionPageUrl"`
	Title         string `json:"title"`
	PolishedText  string `json:"polishedText"`
}

// OAuthTokenResponse mirrors the Notion token endpoint payload. The server
// returns it verbatim; durable storage of the token is the caller's job.
type OAuthTokenResponse struct {
	Success              bool            `json:"success"`
	AccessToken          string          `json:"access_token"`
	WorkspaceID          string          `json:"workspace_id"`
	WorkspaceName        string          `json:"workspace_name"`
	WorkspaceIcon        string          `json:"workspace_icon"`
	BotID                string          `json:"bot_id"`
	Owner                json.RawMessage `json:"owner,omitempty"`
	DuplicatedTemplateID string          `json:"duplicated_template_id,omitempty"`
}
