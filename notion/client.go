// Package notion is a minimal client for the two Notion API calls the
// service performs: creating a page and exchanging an OAuth code.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/voicenotes/backend/apierror"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CreatePage creates one page in the given database, with title as the page
// title property and content as a single paragraph block. The API key is the
// caller's own integration token, supplied per request; the server holds no
// Notion credential of its own. Returns the page's reference URL.
func (c *Client) CreatePage(ctx context.Context, apiKey, databaseID, title, content string) (string, error) {
	payload := map[string]interface{}{
		"parent": map[string]string{
			"database_id": databaseID,
		},
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"title": []map[string]interface{}{
					{"text": map[string]string{"content": title}},
				},
			},
		},
		"children": []map[string]interface{}{
			{
				"object": "block",
				"type":   "paragraph",
				"paragraph": map[string]interface{}{
					"rich_text": []map[string]interface{}{
						{"type": "text", "text": map[string]string{"content": content}},
					},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", apierror.CreateNoteFailed(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/pages", bytes.NewReader(body))
	if err != nil {
		return "", apierror.CreateNoteFailed(err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", apierror.CreateNoteFailed(err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierror.CreateNoteFailed(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", pageError(data)
	}

	var page struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return "", apierror.CreateNoteFailed(err.Error())
	}
	return page.URL, nil
}

// pageError maps Notion's machine-readable error codes onto the service's
// error taxonomy.
func pageError(data []byte) error {
	var apiErr struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(data, &apiErr)

	switch apiErr.Code {
	case "unauthorized":
		return apierror.NotionAuthFailed()
	case "object_not_found":
		return apierror.NotionDatabaseNotFound()
	case "validation_error":
		return apierror.NotionValidation(apiErr.Message)
	default:
		return apierror.CreateNoteFailed(apiErr.Message)
	}
}
