package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicenotes/backend/apierror"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func TestCreatePageSendsTitleAndParagraph(t *testing.T) {
	var gotAuth, gotVersion string
	var payload map[string]interface{}

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pages", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"object":"page","url":"https://www.notion.so/Standup-1234"}`)
	})

	url, err := client.CreatePage(context.Background(), "secret_k", "db-1", "Standup", "Polished body.")
	require.NoError(t, err)
	assert.Equal(t, "https://www.notion.so/Standup-1234", url)
	assert.Equal(t, "Bearer secret_k", gotAuth)
	assert.Equal(t, apiVersion, gotVersion)

	parent := payload["parent"].(map[string]interface{})
	assert.Equal(t, "db-1", parent["database_id"])

	title := payload["properties"].(map[string]interface{})["title"].(map[string]interface{})["title"].([]interface{})
	require.Len(t, title, 1)
	text := title[0].(map[string]interface{})["text"].(map[string]interface{})
	assert.Equal(t, "Standup", text["content"])

	children := payload["children"].([]interface{})
	require.Len(t, children, 1)
	block := children[0].(map[string]interface{})
	assert.Equal(t, "paragraph", block["type"])
	rich := block["paragraph"].(map[string]interface{})["rich_text"].([]interface{})
	body := rich[0].(map[string]interface{})["text"].(map[string]interface{})
	assert.Equal(t, "Polished body.", body["content"])
}

func TestCreatePageMapsErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantKind   string
	}{
		{
			name:       "unauthorized",
			status:     401,
			body:       `{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`,
			wantStatus: 401,
			wantKind:   "Notion authentication failed",
		},
		{
			name:       "object not found",
			status:     404,
			body:       `{"object":"error","status":404,"code":"object_not_found","message":"Could not find database."}`,
			wantStatus: 404,
			wantKind:   "Notion database not found",
		},
		{
			name:       "validation error",
			status:     400,
			body:       `{"object":"error","status":400,"code":"validation_error","message":"title is not a property that exists."}`,
			wantStatus: 400,
			wantKind:   "Notion validation error",
		},
		{
			name:       "anything else",
			status:     503,
			body:       `{"object":"error","status":503,"code":"service_unavailable","message":"Notion is unavailable."}`,
			wantStatus: 500,
			wantKind:   "Failed to create note",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			_, err := client.CreatePage(context.Background(), "k", "db", "t", "c")
			require.Error(t, err)

			apiErr, ok := err.(*apierror.Error)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
		})
	}
}

func TestCreatePageValidationMessagePassesThrough(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		fmt.Fprint(w, `{"code":"validation_error","message":"body.properties.title should be defined"}`)
	})

	_, err := client.CreatePage(context.Background(), "k", "db", "t", "c")
	require.Error(t, err)

	apiErr := err.(*apierror.Error)
	assert.Equal(t, "body.properties.title should be defined", apiErr.Message)
}

func TestExchangeCodeSendsBasicAuthAndGrant(t *testing.T) {
	var user, pass string
	var payload map[string]string

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/oauth/token", r.URL.Path)
		var ok bool
		user, pass, ok = r.BasicAuth()
		require.True(t, ok)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"access_token":"secret_token",
			"workspace_id":"ws-1",
			"workspace_name":"Acme Notes",
			"workspace_icon":"🎙️",
			"bot_id":"bot-1",
			"owner":{"type":"user","user":{"id":"u-1"}},
			"duplicated_template_id":"tpl-1"
		}`)
	})

	token, err := client.ExchangeCode(context.Background(), "client-id", "client-secret", "auth-code", "http://localhost:8080/api/notion/callback")
	require.NoError(t, err)

	assert.Equal(t, "client-id", user)
	assert.Equal(t, "client-secret", pass)
	assert.Equal(t, "authorization_code", payload["grant_type"])
	assert.Equal(t, "auth-code", payload["code"])
	assert.Equal(t, "http://localhost:8080/api/notion/callback", payload["redirect_uri"])

	assert.Equal(t, "secret_token", token.AccessToken)
	assert.Equal(t, "ws-1", token.WorkspaceID)
	assert.Equal(t, "Acme Notes", token.WorkspaceName)
	assert.Equal(t, "bot-1", token.BotID)
	assert.Equal(t, "tpl-1", token.DuplicatedTemplateID)
	assert.JSONEq(t, `{"type":"user","user":{"id":"u-1"}}`, string(token.Owner))
}

func TestExchangeCodePassesUpstreamStatusThrough(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		fmt.Fprint(w, `{"error":"invalid_grant","error_description":"Invalid code."}`)
	})

	_, err := client.ExchangeCode(context.Background(), "id", "secret", "bad-code", "uri")
	require.Error(t, err)

	apiErr := err.(*apierror.Error)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Token exchange failed", apiErr.Kind)
	assert.Equal(t, "Invalid code.", apiErr.Message)
}

func TestExchangeCodeFallsBackToErrorField(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		fmt.Fprint(w, `{"error":"invalid_client"}`)
	})

	_, err := client.ExchangeCode(context.Background(), "id", "secret", "code", "uri")
	require.Error(t, err)

	apiErr := err.(*apierror.Error)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "invalid_client", apiErr.Message)
}

func TestExchangeCodeGenericFallbackMessage(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(502)
		fmt.Fprint(w, `upstream blew up`)
	})

	_, err := client.ExchangeCode(context.Background(), "id", "secret", "code", "uri")
	require.Error(t, err)

	apiErr := err.(*apierror.Error)
	assert.Equal(t, 502, apiErr.Status)
	assert.Equal(t, "Failed to exchange authorization code", apiErr.Message)
}
