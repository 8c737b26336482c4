package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
)

const defaultRequestTimeout = 10 * time.Second

// Client talks to a GoTrue-compatible auth endpoint. Only the password
// grant, signup, logout and OAuth authorize surfaces are used.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewClient creates a new auth client. baseURL is the platform root, e.g.
// https://project.example.co (the /auth/v1 prefix is appended here).
func NewClient(baseURL, apiKey string, tp coreport.TimeProvider, logger coreport.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: defaultRequestTimeout},
		timeProvider: tp,
		logger:       logger,
	}
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID               string `json:"id"`
		Email            string `json:"email"`
		ConfirmedAt      string `json:"confirmed_at"`
		EmailConfirmedAt string `json:"email_confirmed_at"`
	} `json:"user"`
}

type errorResponse struct {
	ErrorCode   string `json:"error_code"`
	Msg         string `json:"msg"`
	Message     string `json:"message"`
	Description string `json:"error_description"`
}

func (e *errorResponse) text() string {
	for _, s := range []string{e.Msg, e.Message, e.Description} {
		if s != "" {
			return s
		}
	}
	return ""
}

// SignIn exchanges email/password for a session via the password grant
func (c *Client) SignIn(ctx context.Context, email, password string) (*platform.Session, error) {
	var token tokenResponse
	status, body, err := c.post(ctx, "/auth/v1/token?grant_type=password", credentialsBody{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, c.authFailure(status, body)
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	return c.sessionFromToken(&token), nil
}

// SignUp registers a new account. When the endpoint requires email
// confirmation it returns a user without tokens; that case surfaces as a
// nil session so callers can show the verification notice.
func (c *Client) SignUp(ctx context.Context, email, password string) (*platform.Session, error) {
	status, body, err := c.post(ctx, "/auth/v1/signup", credentialsBody{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, c.authFailure(status, body)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("decoding signup response: %w", err)
	}
	if token.AccessToken == "" {
		c.logger.Info("Signup pending email verification", map[string]any{
			"email": email,
		})
		return nil, nil
	}
	return c.sessionFromToken(&token), nil
}

// SignOut revokes the session behind the access token
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	status, body, err := c.post(ctx, "/auth/v1/logout", nil, accessToken)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent && status != http.StatusOK {
		return c.authFailure(status, body)
	}
	return nil
}

// CurrentSession restores a session from a stored access token by reading
// its claims locally. No network round trip: the token is the session.
func (c *Client) CurrentSession(_ context.Context, accessToken string) (*platform.Session, error) {
	if accessToken == "" {
		return nil, errs.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthorized, err.Error())
	}

	session := &platform.Session{AccessToken: accessToken}
	if sub, err := claims.GetSubject(); err == nil {
		session.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}

	if session.UserID == "" {
		return nil, errs.ErrUnauthorized
	}
	if session.Expired(c.timeProvider.Now()) {
		return nil, errs.ErrSessionExpired
	}
	return session, nil
}

// AuthorizeURL builds the OAuth redirect URL for a third-party provider
func (c *Client) AuthorizeURL(provider, redirectTo string) (string, error) {
	if provider == "" {
		return "", errs.ErrInvalidRequest
	}
	query := url.Values{}
	query.Set("provider", provider)
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}
	return c.baseURL + "/auth/v1/authorize?" + query.Encode(), nil
}

func (c *Client) sessionFromToken(token *tokenResponse) *platform.Session {
	return &platform.Session{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		UserID:       token.User.ID,
		Email:        token.User.Email,
		ExpiresAt:    c.timeProvider.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
	}
}

func (c *Client) post(ctx context.Context, path string, payload any, accessToken string) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding auth request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("building auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Auth request failed", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return 0, nil, fmt.Errorf("auth request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, fmt.Errorf("reading auth response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) authFailure(status int, body []byte) error {
	var parsed errorResponse
	_ = json.Unmarshal(body, &parsed)

	if parsed.ErrorCode == "email_not_confirmed" ||
		strings.Contains(strings.ToLower(parsed.text()), "email not confirmed") {
		return errs.ErrEmailNotConfirmed
	}

	switch status {
	case http.StatusUnauthorized, http.StatusBadRequest, http.StatusForbidden:
		if msg := parsed.text(); msg != "" {
			return fmt.Errorf("%w: %s", errs.ErrUnauthorized, msg)
		}
		return errs.ErrUnauthorized
	default:
		return fmt.Errorf("%w: auth endpoint returned status %d", errs.ErrInternalServer, status)
	}
}
