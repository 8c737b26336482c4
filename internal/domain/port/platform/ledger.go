package platform

import "context"

// Outcome is the closed result discriminator for ledger calls. Modeling it as
// an enum forces every call site to handle the full taxonomy instead of
// matching on loose strings.
type Outcome int

const (
	// OutcomeOK means the server confirmed the mutation
	OutcomeOK Outcome = iota
	// OutcomeInsufficientFunds means the server rejected the spend; no mutation occurred
	OutcomeInsufficientFunds
	// OutcomeUnauthorized means no usable identity reached the server; no mutation occurred
	OutcomeUnauthorized
	// OutcomeUnknown means the call ended ambiguously. The caller must not
	// assume the mutation did or did not happen.
	OutcomeUnknown
)

// String returns the wire-level discriminator for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeInsufficientFunds:
		return "insufficient_funds"
	case OutcomeUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// SpendResult is the normalized response of the deduct_credits procedure
type SpendResult struct {
	Outcome          Outcome
	CreditsRemaining int
	Required         int
	Available        int
	Message          string
}

// EarnResult is the normalized response of the add_credits procedure
type EarnResult struct {
	Outcome      Outcome
	CreditsTotal int
	Message      string
}

// UnlockResult is the normalized response of the unlock_prompt procedure.
// AlreadyOwned reports the server's short-circuit: the prompt was unlocked in
// a previous call and no second debit happened.
type UnlockResult struct {
	Outcome          Outcome
	AlreadyOwned     bool
	CreditsRemaining int
	Required         int
	Available        int
	Message          string
}

// LedgerGateway is the only component allowed to invoke the remote
// balance-mutating procedures. It normalizes their heterogeneous responses
// into the result shapes above and folds transport failures into
// OutcomeUnknown rather than guessing. It never retries and never caches;
// retry policy belongs to the caller so no spend can be repeated implicitly.
type LedgerGateway interface {
	// Spend debits amount credits for a one-shot copy of the given prompt
	Spend(ctx context.Context, promptID string, amount int) SpendResult

	// Earn credits the signed-in user's balance, tagged with a reward reason
	Earn(ctx context.Context, amount int, reason string) EarnResult

	// Unlock debits cost credits and records a permanent purchase of the prompt
	Unlock(ctx context.Context, promptID string, cost int) UnlockResult
}
