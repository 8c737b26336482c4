package entity

import (
	"time"

	errs "github.com/prompter-labs/prompter/internal/domain/error"
)

// Role describes what a signed-in user is allowed to do
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile is the mutable per-user record owned by the platform. The credits
// figure is server-authoritative: anything held here is a cached snapshot
// that may be stale until the next refresh, and it is never used as the gate
// for whether a spend is attempted.
type Profile struct {
	ID        string
	Email     string
	Username  string
	Credits   int
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile builds a profile snapshot, rejecting a negative credit balance
func NewProfile(id, email string, credits int) (*Profile, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}
	if credits < 0 {
		return nil, errs.ErrNegativeCredits
	}
	return &Profile{
		ID:      id,
		Email:   email,
		Credits: credits,
		Role:    RoleUser,
	}, nil
}

// IsAdmin reports whether the profile carries the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAfford is advisory only; the server re-checks on every spend
func (p *Profile) CanAfford(cost int) bool {
	return p.Credits >= cost
}
