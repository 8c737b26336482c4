package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coremocks "github.com/prompter-labs/prompter/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func fixedTimeProvider(t *testing.T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedNow).Maybe()
	return tp
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Password grant returns a full session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			assert.Equal(t, "anon-key", r.Header.Get("apikey"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"access_token": "jwt-token",
				"refresh_token": "refresh-token",
				"expires_in": 3600,
				"user": {"id": "user-1", "email": "buyer@example.com"}
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key", fixedTimeProvider(t), quietLogger(t))

		session, err := client.SignIn(ctx, "buyer@example.com", "hunter22")

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", session.AccessToken)
		assert.Equal(t, "refresh-token", session.RefreshToken)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, "buyer@example.com", session.Email)
		assert.Equal(t, fixedNow.Add(time.Hour), session.ExpiresAt)
	})

	t.Run("Bad credentials map to unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error_code":"invalid_credentials","msg":"Invalid login credentials"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key", fixedTimeProvider(t), quietLogger(t))

		session, err := client.SignIn(ctx, "buyer@example.com", "wrong")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, session)
	})

	t.Run("Unconfirmed email is reported distinctly", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error_code":"email_not_confirmed","msg":"Email not confirmed"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key", fixedTimeProvider(t), quietLogger(t))

		_, err := client.SignIn(ctx, "buyer@example.com", "hunter22")

		assert.ErrorIs(t, err, errs.ErrEmailNotConfirmed)
	})

	t.Run("Server failure maps to internal error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key", fixedTimeProvider(t), quietLogger(t))

		_, err := client.SignIn(ctx, "buyer@example.com", "hunter22")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending email verification yields no session and no error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user": {"id": "user-1", "email": "new@example.com"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key", fixedTimeProvider(t), quietLogger(t))

		session, err := client.SignUp(ctx, "new@example.com", "hunter22")

		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Auto-confirmed signup returns a session immediately", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"access_token": "jwt-token",
				"refresh_token": "refresh-token",
				"expires_in": 3600,
				"user": {"id": "user-1", "email": "new@example.com"}
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key", fixedTimeProvider(t), quietLogger(t))

		session, err := client.SignUp(ctx, "new@example.com", "hunter22")

		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "user-1", session.UserID)
	})
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("Logout sends the session token and accepts 204", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/logout", r.URL.Path)
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key", fixedTimeProvider(t), quietLogger(t))

		err := client.SignOut(ctx, "session-token")

		assert.NoError(t, err)
	})

	t.Run("Revoked token is reported", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid token"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key", fixedTimeProvider(t), quietLogger(t))

		err := client.SignOut(ctx, "session-token")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestCurrentSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid token restores the session without a network call", func(t *testing.T) {
		client := NewClient("https://auth.invalid", "anon-key", fixedTimeProvider(t), quietLogger(t))

		token := signedToken(t, jwt.MapClaims{
			"sub":   "user-1",
			"email": "buyer@example.com",
			"exp":   fixedNow.Add(time.Hour).Unix(),
		})

		session, err := client.CurrentSession(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, "buyer@example.com", session.Email)
		assert.Equal(t, token, session.AccessToken)
	})

	t.Run("Expired token cannot be restored", func(t *testing.T) {
		client := NewClient("https://auth.invalid", "anon-key", fixedTimeProvider(t), quietLogger(t))

		token := signedToken(t, jwt.MapClaims{
			"sub": "user-1",
			"exp": fixedNow.Add(-time.Minute).Unix(),
		})

		_, err := client.CurrentSession(ctx, token)

		assert.ErrorIs(t, err, errs.ErrSessionExpired)
	})

	t.Run("Token without a subject is rejected", func(t *testing.T) {
		client := NewClient("https://auth.invalid", "anon-key", fixedTimeProvider(t), quietLogger(t))

		token := signedToken(t, jwt.MapClaims{
			"exp": fixedNow.Add(time.Hour).Unix(),
		})

		_, err := client.CurrentSession(ctx, token)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		client := NewClient("https://auth.invalid", "anon-key", fixedTimeProvider(t), quietLogger(t))

		_, err := client.CurrentSession(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Empty token is rejected", func(t *testing.T) {
		client := NewClient("https://auth.invalid", "anon-key", fixedTimeProvider(t), quietLogger(t))

		_, err := client.CurrentSession(ctx, "")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestAuthorizeURL(t *testing.T) {
	t.Run("Provider and redirect are encoded", func(t *testing.T) {
		client := NewClient("https://project.example.co/", "anon-key", fixedTimeProvider(t), quietLogger(t))

		got, err := client.AuthorizeURL("google", "https://prompter.example.com/auth/callback")

		require.NoError(t, err)
		assert.Equal(t,
			"https://project.example.co/auth/v1/authorize?provider=google&redirect_to=https%3A%2F%2Fprompter.example.com%2Fauth%2Fcallback",
			got)
	})

	t.Run("Provider is required", func(t *testing.T) {
		client := NewClient("https://project.example.co", "anon-key", fixedTimeProvider(t), quietLogger(t))

		_, err := client.AuthorizeURL("", "")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
