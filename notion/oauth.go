package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/voicenotes/backend/apierror"
)

// TokenResponse is the payload of a successful authorization-code exchange.
// The owner object is kept raw; the server never interprets it.
type TokenResponse struct {
	AccessToken          string          `json:"access_token"`
	WorkspaceID          string          `json:"workspace_id"`
	WorkspaceName        string          `json:"workspace_name"`
	WorkspaceIcon        string          `json:"workspace_icon"`
	BotID                string          `json:"bot_id"`
	Owner                json.RawMessage `json:"owner"`
	DuplicatedTemplateID string          `json:"duplicated_template_id"`
}

// ExchangeCode trades a one-time authorization code for an access token via
// the Notion token endpoint, authenticating with HTTP Basic built from the
// server's OAuth client credentials. One call, no retry; a non-success
// status passes the upstream status and description through to the caller.
func (c *Client) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (*TokenResponse, error) {
	payload := map[string]string{
		"grant_type":   "authorization_code",
		"code":         code,
		"redirect_uri": redirectURI,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apierror.TokenExchangeFailed(0, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/oauth/token", bytes.NewReader(body))
	if err != nil {
		return nil, apierror.TokenExchangeFailed(0, err.Error())
	}
	req.SetBasicAuth(clientID, clientSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, apierror.TokenExchangeFailed(0, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.TokenExchangeFailed(0, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var oauthErr struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}
		_ = json.Unmarshal(data, &oauthErr)
		message := oauthErr.ErrorDescription
		if message == "" {
			message = oauthErr.Error
		}
		return nil, apierror.TokenExchangeFailed(resp.StatusCode, message)
	}

	var token TokenResponse
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, apierror.TokenExchangeFailed(0, err.Error())
	}
	return &token, nil
}
