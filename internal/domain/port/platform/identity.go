package platform

import (
	"context"
	"time"
)

// Session is the client's reference to an identity-provider session. The
// provider owns authentication entirely; this is an opaque handle plus the
// few claims the client displays.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	ExpiresAt    time.Time
}

// Expired reports whether the access token is past its expiry at time now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// IdentityProvider is the consumed external auth service
type IdentityProvider interface {
	// SignIn exchanges credentials for a session. A rejection pending email
	// verification surfaces as ErrEmailNotConfirmed.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignUp registers a new user. A nil session with a nil error signals
	// that the user must verify their email before signing in.
	SignUp(ctx context.Context, email, password string) (*Session, error)

	// SignOut revokes the session behind the access token
	SignOut(ctx context.Context, accessToken string) error

	// CurrentSession restores a session from a stored access token,
	// returning ErrSessionExpired when it is no longer usable
	CurrentSession(ctx context.Context, accessToken string) (*Session, error)

	// AuthorizeURL builds the OAuth redirect URL for a third-party provider
	AuthorizeURL(provider, redirectTo string) (string, error)
}
