package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voicenotes/backend/apierror"
	"github.com/voicenotes/backend/model"
)

// NotionCallback handles GET /api/notion/callback, the OAuth redirect
// target. The token payload goes back to the caller verbatim; the server
// stores nothing.
func (h *Handler) NotionCallback(c *fiber.Ctx) error {
	log := h.requestLog(c, "notion-callback")

	if denied := c.Query("error"); denied != "" {
		return apierror.AuthorizationDenied(denied)
	}

	code := c.Query("code")
	if code == "" {
		return apierror.MissingAuthCode()
	}

	if h.cfg.NotionClientID == "" || h.cfg.NotionClientSecret == "" {
		return apierror.Misconfigured("Notion OAuth credentials are not configured")
	}

	log.Info("exchanging authorization code for access token")
	token, err := h.notion.ExchangeCode(c.UserContext(), h.cfg.NotionClientID, h.cfg.NotionClientSecret, code, h.cfg.NotionRedirectURI)
	if err != nil {
		return err
	}

	log.Info("access token obtained")
	return c.JSON(model.OAuthTokenResponse{
		Success:              true,
		AccessToken:          token.AccessToken,
		WorkspaceID:          token.WorkspaceID,
		WorkspaceName:        token.WorkspaceName,
		WorkspaceIcon:        token.WorkspaceIcon,
		BotID:                token.BotID,
		Owner:                token.Owner,
		DuplicatedTemplateID: token.DuplicatedTemplateID,
	})
}
