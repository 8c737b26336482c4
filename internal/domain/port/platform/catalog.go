package platform

import (
	"context"

	"github.com/prompter-labs/prompter/internal/domain/entity"
)

// PromptFilter narrows a catalog listing. Model, MediaType and Category are
// equality filters; TitlePrefix is a prefix search. Empty fields are ignored.
type PromptFilter struct {
	Model       string
	MediaType   string
	Category    string
	TitlePrefix string
	Limit       int
}

// PromptRepository reads the platform's prompts table. Listing results are
// served with the prompt text intact; redaction happens in the catalog use
// case so there is exactly one display gate.
type PromptRepository interface {
	List(ctx context.Context, filter PromptFilter) ([]*entity.Prompt, error)
	GetByID(ctx context.Context, id string) (*entity.Prompt, error)
	// Create inserts a new catalog entry (admin upload only)
	Create(ctx context.Context, prompt *entity.Prompt) error
}

// ProfileRepository reads and narrowly updates the profiles table. Credits
// are never written here; only the ledger procedures mutate balances.
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*entity.Profile, error)
	UpdateUsername(ctx context.Context, userID, username string) error
}

// PurchaseRepository answers ownership questions against the purchases table
type PurchaseRepository interface {
	// Exists reports whether the user has permanently unlocked the prompt
	Exists(ctx context.Context, userID, promptID string) (bool, error)
}

// TransactionRepository reads the append-only ledger for history display
type TransactionRepository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)
}
