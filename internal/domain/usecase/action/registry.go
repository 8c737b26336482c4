package action

import "sync"

// Registry hands out one Coordinator per user for the HTTP surface, so the
// re-entrancy guard covers rapid repeated requests from the same account.
type Registry struct {
	mu           sync.Mutex
	coordinators map[string]*Coordinator
}

// NewRegistry creates an empty coordinator registry
func NewRegistry() *Registry {
	return &Registry{coordinators: make(map[string]*Coordinator)}
}

// For returns the user's coordinator, building it on first use
func (r *Registry) For(userID string, build func() *Coordinator) *Coordinator {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.coordinators[userID]; ok {
		return c
	}
	c := build()
	r.coordinators[userID] = c
	return c
}

// Drop discards a user's coordinator on sign-out
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	delete(r.coordinators, userID)
	r.mu.Unlock()
}
