package reward

import "sync"

// Registry hands out one Flow per user for the HTTP surface, so the
// claim-once guard covers repeated requests from the same account
type Registry struct {
	mu    sync.Mutex
	flows map[string]*Flow
}

// NewRegistry creates an empty flow registry
func NewRegistry() *Registry {
	return &Registry{flows: make(map[string]*Flow)}
}

// For returns the user's flow, building it on first use
func (r *Registry) For(userID string, build func() *Flow) *Flow {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.flows[userID]; ok {
		return f
	}
	f := build()
	r.flows[userID] = f
	return f
}

// Drop closes and discards a user's flow on sign-out
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	f, ok := r.flows[userID]
	delete(r.flows, userID)
	r.mu.Unlock()

	if ok {
		f.Close()
	}
}
