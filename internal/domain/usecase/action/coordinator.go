package action

import (
	"context"
	"sync/atomic"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	"github.com/prompter-labs/prompter/internal/domain/usecase/session"
)

// Status is the terminal state of one copy/unlock invocation
type Status int

const (
	// StatusOK means the debit was confirmed and the side effect performed
	StatusOK Status = iota
	// StatusAlreadyOwned means the prompt was unlocked earlier; no debit was issued
	StatusAlreadyOwned
	// StatusUnauthorized means no active session; the action aborted before any mutation
	StatusUnauthorized
	// StatusInsufficientFunds means the server rejected the spend; recovery is the reward flow
	StatusInsufficientFunds
	// StatusFailed means the ledger call ended ambiguously; the user should
	// check their balance before retrying manually
	StatusFailed
	// StatusBusy means another invocation for this coordinator is still outstanding
	StatusBusy
)

// String returns the user-facing discriminator for the status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAlreadyOwned:
		return "already_owned"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusInsufficientFunds:
		return "insufficient_funds"
	case StatusFailed:
		return "unknown"
	default:
		return "busy"
	}
}

// Result is what a UI surface renders after an invocation. OfferReward marks
// the insufficient-funds recovery affordance; SignInRedirect preserves the
// intended destination for the unauthorized path.
type Result struct {
	Status           Status
	CreditsRemaining int
	Required         int
	Available        int
	Message          string
	OfferReward      bool
	SignInRedirect   string
}

// Coordinator drives one user-initiated copy or unlock action at a time.
// Each invocation runs the sequence auth check -> ownership short-circuit
// (unlock only) -> ledger call -> side effect -> balance refresh, and the
// inFlight flag guards against re-entrant invocation while a call is
// outstanding so a double-click can never double-spend.
type Coordinator struct {
	ledger    platform.LedgerGateway
	purchases platform.PurchaseRepository
	store     *session.Store
	clipboard coreport.Clipboard
	logger    coreport.Logger
	inFlight  atomic.Bool
}

// NewCoordinator creates a coordinator bound to one session store and one
// clipboard sink
func NewCoordinator(
	ledger platform.LedgerGateway,
	purchases platform.PurchaseRepository,
	store *session.Store,
	clipboard coreport.Clipboard,
	logger coreport.Logger,
) *Coordinator {
	return &Coordinator{
		ledger:    ledger,
		purchases: purchases,
		store:     store,
		clipboard: clipboard,
		logger:    logger,
	}
}

// Copy debits the prompt's cost and, only after the confirmed debit, places
// the prompt text on the clipboard. returnPath is preserved for the sign-in
// redirect when no session is active.
func (c *Coordinator) Copy(ctx context.Context, prompt *entity.Prompt, returnPath string) Result {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{Status: StatusBusy, Message: "Action already in progress"}
	}
	defer c.inFlight.Store(false)

	if !c.store.SignedIn() {
		c.logger.Info("Copy rejected, no active session", map[string]any{
			"prompt_id": prompt.ID,
		})
		return Result{
			Status:         StatusUnauthorized,
			Message:        "Please sign in to copy prompts",
			SignInRedirect: returnPath,
		}
	}

	res := c.ledger.Spend(ctx, prompt.ID, prompt.Cost)
	switch res.Outcome {
	case platform.OutcomeOK:
		out := Result{Status: StatusOK, CreditsRemaining: res.CreditsRemaining, Message: "Prompt copied"}
		if err := c.clipboard.Write(prompt.PromptText); err != nil {
			// The debit already happened; the text is still owed to the user
			c.logger.Error("Clipboard write failed after confirmed debit", map[string]any{
				"prompt_id": prompt.ID,
				"error":     err.Error(),
			})
			out.Message = "Credits deducted but the clipboard write failed"
		}
		c.refresh(ctx, prompt.ID)
		return out

	case platform.OutcomeInsufficientFunds:
		return Result{
			Status:      StatusInsufficientFunds,
			Required:    res.Required,
			Available:   res.Available,
			Message:     "Not enough credits",
			OfferReward: true,
		}

	case platform.OutcomeUnauthorized:
		return Result{
			Status:         StatusUnauthorized,
			Message:        "Session is no longer valid, please sign in again",
			SignInRedirect: returnPath,
		}

	default:
		// Ambiguous outcome: the debit may or may not have happened. No
		// automatic retry; the server's next balance read is the truth.
		c.logger.Warn("Spend ended with unknown outcome", map[string]any{
			"prompt_id": prompt.ID,
			"message":   res.Message,
		})
		return Result{
			Status:  StatusFailed,
			Message: "Something went wrong. Check your balance before retrying.",
		}
	}
}

// Unlock permanently purchases the prompt. Ownership is checked first so an
// already-purchased prompt never reaches the ledger again; the server's own
// already_owned short-circuit is treated as success without a second debit.
func (c *Coordinator) Unlock(ctx context.Context, prompt *entity.Prompt, returnPath string) Result {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{Status: StatusBusy, Message: "Action already in progress"}
	}
	defer c.inFlight.Store(false)

	sess, _ := c.store.Snapshot()
	if sess == nil {
		return Result{
			Status:         StatusUnauthorized,
			Message:        "Please sign in to unlock prompts",
			SignInRedirect: returnPath,
		}
	}

	owned, err := c.purchases.Exists(ctx, sess.UserID, prompt.ID)
	if err != nil {
		// Pessimistic: treat the prompt as locked and let the unlock
		// procedure remain the authoritative gate.
		c.logger.Warn("Ownership check failed, proceeding as locked", map[string]any{
			"prompt_id": prompt.ID,
			"user_id":   sess.UserID,
			"error":     err.Error(),
		})
	} else if owned {
		return Result{Status: StatusAlreadyOwned, Message: "Prompt already unlocked"}
	}

	res := c.ledger.Unlock(ctx, prompt.ID, prompt.Cost)
	switch res.Outcome {
	case platform.OutcomeOK:
		status := StatusOK
		msg := "Prompt unlocked"
		if res.AlreadyOwned {
			status = StatusAlreadyOwned
			msg = "Prompt already unlocked"
		}
		// already_owned implies no balance change; the refresh is a no-op
		// read and is kept until the contract says otherwise.
		c.refresh(ctx, prompt.ID)
		return Result{Status: status, CreditsRemaining: res.CreditsRemaining, Message: msg}

	case platform.OutcomeInsufficientFunds:
		return Result{
			Status:      StatusInsufficientFunds,
			Required:    res.Required,
			Available:   res.Available,
			Message:     "Not enough credits",
			OfferReward: true,
		}

	case platform.OutcomeUnauthorized:
		return Result{
			Status:         StatusUnauthorized,
			Message:        "Session is no longer valid, please sign in again",
			SignInRedirect: returnPath,
		}

	default:
		c.logger.Warn("Unlock ended with unknown outcome", map[string]any{
			"prompt_id": prompt.ID,
			"message":   res.Message,
		})
		return Result{
			Status:  StatusFailed,
			Message: "Something went wrong. Check your balance before retrying.",
		}
	}
}

// refresh updates the balance cache after a confirmed mutation. Failure is
// logged and swallowed: the cache stays stale until the next refresh and the
// display is advisory only.
func (c *Coordinator) refresh(ctx context.Context, promptID string) {
	if err := c.store.Refresh(ctx); err != nil {
		c.logger.Warn("Balance refresh after mutation failed", map[string]any{
			"prompt_id": promptID,
			"error":     err.Error(),
		})
	}
}
