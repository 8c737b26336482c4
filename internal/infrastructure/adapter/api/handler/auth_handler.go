package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	"github.com/prompter-labs/prompter/internal/domain/usecase/action"
	"github.com/prompter-labs/prompter/internal/domain/usecase/reward"
	"github.com/prompter-labs/prompter/internal/domain/usecase/session"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/dto"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-in, sign-up and sign-out HTTP requests
type AuthHandler struct {
	identity     platform.IdentityProvider
	sessions     *session.Manager
	coordinators *action.Registry
	rewards      *reward.Registry
	redirectTo   string
	logger       coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	identity platform.IdentityProvider,
	sessions *session.Manager,
	coordinators *action.Registry,
	rewards *reward.Registry,
	redirectTo string,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		identity:     identity,
		sessions:     sessions,
		coordinators: coordinators,
		rewards:      rewards,
		redirectTo:   redirectTo,
		logger:       logger,
	}
}

// SignIn handles the POST /auth/signin endpoint
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	sess, err := h.identity.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainerr.ErrEmailNotConfirmed) {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Please verify your email before signing in",
			})
			return
		}
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Invalid email or password",
		})
		return
	}

	if _, err := h.sessions.ForSession(c.Request.Context(), sess); err != nil {
		h.logger.Error("Failed to establish session store", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, sessionResponse(sess))
}

// SignUp handles the POST /auth/signup endpoint
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	sess, err := h.identity.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Sign up failed: " + err.Error(),
		})
		return
	}

	if sess == nil {
		c.JSON(http.StatusOK, dto.SignUpResponse{
			VerificationEmail: true,
			Message:           "Check your inbox to verify your email address",
		})
		return
	}

	resp := sessionResponse(sess)
	c.JSON(http.StatusOK, dto.SignUpResponse{Session: &resp})
}

// SignOut handles the POST /auth/signout endpoint
func (h *AuthHandler) SignOut(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Authentication required",
		})
		return
	}

	if err := h.identity.SignOut(c.Request.Context(), sess.AccessToken); err != nil {
		h.logger.Warn("Remote sign-out failed, clearing local state anyway", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
	}

	h.sessions.Drop(sess.UserID)
	h.coordinators.Drop(sess.UserID)
	h.rewards.Drop(sess.UserID)

	c.Status(http.StatusNoContent)
}

// AuthorizeURL handles the GET /auth/authorize endpoint for OAuth providers
func (h *AuthHandler) AuthorizeURL(c *gin.Context) {
	provider := c.Query("provider")
	redirectTo := c.DefaultQuery("redirect_to", h.redirectTo)

	url, err := h.identity.AuthorizeURL(provider, redirectTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Missing or unsupported provider",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AuthorizeURLResponse{URL: url})
}

func sessionResponse(sess *platform.Session) dto.SessionResponse {
	return dto.SessionResponse{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		UserID:       sess.UserID,
		Email:        sess.Email,
		ExpiresAt:    sess.ExpiresAt,
	}
}
