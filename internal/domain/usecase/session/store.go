package session

import (
	"context"
	"sync"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
)

// Store is the cached view of the current session's identity and profile.
// Every surface that displays a credit balance reads from here instead of
// issuing its own fetch, so a single consistent number is visible at any
// instant. Refresh replaces the whole profile snapshot atomically; it is the
// only writer after Establish.
type Store struct {
	mu       sync.RWMutex
	session  *platform.Session
	profile  *entity.Profile
	profiles platform.ProfileRepository
	logger   coreport.Logger
}

// NewStore creates an empty session store
func NewStore(profiles platform.ProfileRepository, logger coreport.Logger) *Store {
	return &Store{
		profiles: profiles,
		logger:   logger,
	}
}

// Establish populates the store for a freshly signed-in or restored session
func (s *Store) Establish(ctx context.Context, sess *platform.Session) error {
	if sess == nil || sess.UserID == "" {
		return errs.ErrUnauthorized
	}

	profile, err := s.profiles.GetByID(ctx, sess.UserID)
	if err != nil {
		s.logger.Error("Failed to load profile on session establishment", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
		return err
	}

	s.mu.Lock()
	s.session = sess
	s.profile = profile
	s.mu.Unlock()

	s.logger.Info("Session established", map[string]any{
		"user_id": sess.UserID,
		"credits": profile.Credits,
	})
	return nil
}

// Refresh re-fetches the profile and swaps the snapshot in one step. Called
// after every successful ledger mutation. A failed refresh keeps the previous
// snapshot; the balance display is advisory and the server re-checks funds on
// every spend anyway.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.RLock()
	sess := s.session
	s.mu.RUnlock()

	if sess == nil {
		return errs.ErrUnauthorized
	}

	profile, err := s.profiles.GetByID(ctx, sess.UserID)
	if err != nil {
		s.logger.Warn("Profile refresh failed, keeping cached snapshot", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
		return err
	}

	s.mu.Lock()
	// The session may have been torn down while the fetch was in flight;
	// discard the result rather than resurrecting a signed-out profile.
	if s.session == nil || s.session.UserID != profile.ID {
		s.mu.Unlock()
		return errs.ErrUnauthorized
	}
	s.profile = profile
	s.mu.Unlock()

	return nil
}

// Snapshot returns the current session and profile. The profile is a copy;
// readers never observe partial-field updates.
func (s *Store) Snapshot() (*platform.Session, *entity.Profile) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, nil
	}
	sess := *s.session
	var profile *entity.Profile
	if s.profile != nil {
		clone := *s.profile
		profile = &clone
	}
	return &sess, profile
}

// SignedIn reports whether the store holds an active session
func (s *Store) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

// Credits returns the cached balance, or zero when signed out
func (s *Store) Credits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return 0
	}
	return s.profile.Credits
}

// Clear tears the store down on sign-out
func (s *Store) Clear() {
	s.mu.Lock()
	s.session = nil
	s.profile = nil
	s.mu.Unlock()
}
