package dto

import "time"

// CredentialsRequest is the sign-in / sign-up payload
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SessionResponse is returned after a successful sign-in
type SessionResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// SignUpResponse covers both immediate sessions and the verify-email notice
type SignUpResponse struct {
	Session           *SessionResponse `json:"session,omitempty"`
	VerificationEmail bool             `json:"verification_email"`
	Message           string           `json:"message,omitempty"`
}

// AuthorizeURLResponse carries the OAuth redirect URL
type AuthorizeURLResponse struct {
	URL string `json:"url"`
}
