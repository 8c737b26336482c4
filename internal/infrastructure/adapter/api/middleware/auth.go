package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	"github.com/prompter-labs/prompter/internal/domain/usecase/session"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares
const (
	ContextSession = "session"
	ContextStore   = "store"
)

// RequireAuth resolves the bearer token into a session and its store,
// aborting with 401 when no usable session exists
func RequireAuth(identity platform.IdentityProvider, sessions *session.Manager, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, store, err := resolveSession(c, identity, sessions)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Authentication required",
			})
			return
		}

		c.Set(ContextSession, sess)
		c.Set(ContextStore, store)
		c.Next()
	}
}

// OptionalAuth resolves the bearer token when present but lets anonymous
// requests through. Browsing is public; only actions require a session.
func OptionalAuth(identity platform.IdentityProvider, sessions *session.Manager, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, store, err := resolveSession(c, identity, sessions)
		if err == nil {
			c.Set(ContextSession, sess)
			c.Set(ContextStore, store)
		}
		c.Next()
	}
}

func resolveSession(
	c *gin.Context,
	identity platform.IdentityProvider,
	sessions *session.Manager,
) (*platform.Session, *session.Store, error) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		return nil, nil, domainerr.ErrUnauthorized
	}

	sess, err := identity.CurrentSession(c.Request.Context(), token)
	if err != nil {
		return nil, nil, err
	}

	store, err := sessions.ForSession(c.Request.Context(), sess)
	if err != nil {
		return nil, nil, err
	}
	return sess, store, nil
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// SessionFrom extracts the session placed by the auth middleware
func SessionFrom(c *gin.Context) (*platform.Session, bool) {
	value, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	sess, ok := value.(*platform.Session)
	return sess, ok
}

// StoreFrom extracts the session store placed by the auth middleware
func StoreFrom(c *gin.Context) (*session.Store, bool) {
	value, ok := c.Get(ContextStore)
	if !ok {
		return nil, false
	}
	store, ok := value.(*session.Store)
	return store, ok
}
