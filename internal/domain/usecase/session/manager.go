package session

import (
	"context"
	"sync"

	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
)

// Manager keys one Store per authenticated user for the HTTP surface. The
// terminal client holds a single Store directly and never needs this.
type Manager struct {
	mu       sync.Mutex
	stores   map[string]*Store
	profiles platform.ProfileRepository
	logger   coreport.Logger
}

// NewManager creates an empty session manager
func NewManager(profiles platform.ProfileRepository, logger coreport.Logger) *Manager {
	return &Manager{
		stores:   make(map[string]*Store),
		profiles: profiles,
		logger:   logger,
	}
}

// ForSession returns the user's store, establishing one on first sight of the
// session. The session argument is updated on the existing store so a token
// refresh doesn't strand an older handle.
func (m *Manager) ForSession(ctx context.Context, sess *platform.Session) (*Store, error) {
	m.mu.Lock()
	store, ok := m.stores[sess.UserID]
	if !ok {
		store = NewStore(m.profiles, m.logger)
		m.stores[sess.UserID] = store
	}
	m.mu.Unlock()

	if !store.SignedIn() {
		if err := store.Establish(ctx, sess); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// Drop tears down a user's store on sign-out
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	store, ok := m.stores[userID]
	delete(m.stores, userID)
	m.mu.Unlock()

	if ok {
		store.Clear()
	}
}
