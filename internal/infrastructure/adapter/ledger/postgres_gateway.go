package ledger

import (
	"bytes"
	"context"
	"encoding/json"

	"gorm.io/gorm"

	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
)

// Procedure names are an external contract fixed by the platform; the
// canonical unlock signature is unlock_prompt(prompt_id_input, cost_input).
const (
	spendProcedure  = "SELECT deduct_credits(?, ?)"
	earnProcedure   = "SELECT add_credits(?, ?)"
	unlockProcedure = "SELECT unlock_prompt(?, ?)"
)

// rpcCaller invokes one stored procedure and returns the raw payload.
// Extracted so the response normalization can be tested without a database.
type rpcCaller interface {
	Call(ctx context.Context, query string, args ...any) (string, error)
}

// gormCaller executes procedures over the platform's Postgres connection.
// The acting user is conveyed through the request.jwt.claim.sub setting the
// procedures read, scoped to the wrapping transaction.
type gormCaller struct {
	db     *gorm.DB
	userID string
}

func (c *gormCaller) Call(ctx context.Context, query string, args ...any) (string, error) {
	var raw string
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.userID != "" {
			if err := tx.Exec("SELECT set_config('request.jwt.claim.sub', ?, true)", c.userID).Error; err != nil {
				return err
			}
		}
		return tx.Raw(query, args...).Scan(&raw).Error
	})
	return raw, err
}

// Gateway is the Postgres implementation of the remote ledger contract. It
// is the single place that invokes the balance-mutating procedures; it
// performs no retries and holds no cache. A transport failure is reported as
// OutcomeUnknown because the debit may or may not have landed server-side.
type Gateway struct {
	db     *gorm.DB
	caller rpcCaller
	logger coreport.Logger
}

// NewGateway creates an unbound gateway over the platform connection
func NewGateway(db *gorm.DB, logger coreport.Logger) *Gateway {
	return &Gateway{
		db:     db,
		caller: &gormCaller{db: db},
		logger: logger,
	}
}

// ForUser returns a gateway acting as the given user. The cheap copy is how
// per-request binding works on the HTTP surface.
func (g *Gateway) ForUser(userID string) platform.LedgerGateway {
	return &Gateway{
		db:     g.db,
		caller: &gormCaller{db: g.db, userID: userID},
		logger: g.logger,
	}
}

// newWithCaller is the test seam
func newWithCaller(caller rpcCaller, logger coreport.Logger) *Gateway {
	return &Gateway{caller: caller, logger: logger}
}

// envelope is the union of the fields the three procedures may return.
// Field names vary across procedure revisions, so near-synonyms are kept and
// coalesced during normalization.
type envelope struct {
	Success          bool   `json:"success"`
	Error            string `json:"error"`
	Message          string `json:"message"`
	CurrentCredits   *int   `json:"current_credits"`
	RequiredCredits  *int   `json:"required_credits"`
	Required         *int   `json:"required"`
	Available        *int   `json:"available"`
	CreditsRemaining *int   `json:"credits_remaining"`
	CreditsTotal     *int   `json:"credits_total"`
	AlreadyOwned     bool   `json:"already_owned"`
}

// decodeEnvelope handles both shapes the platform produces: a JSON object,
// or that same object serialized again into a JSON string.
func decodeEnvelope(raw string) (*envelope, error) {
	data := bytes.TrimSpace([]byte(raw))
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, err
		}
		data = []byte(inner)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *envelope) outcome() platform.Outcome {
	if e.Success {
		return platform.OutcomeOK
	}
	switch e.Error {
	case "insufficient_funds", "insufficient_credits":
		return platform.OutcomeInsufficientFunds
	case "unauthorized", "not_authenticated":
		return platform.OutcomeUnauthorized
	default:
		return platform.OutcomeUnknown
	}
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

// Spend invokes deduct_credits for a one-shot copy debit
func (g *Gateway) Spend(ctx context.Context, promptID string, amount int) platform.SpendResult {
	raw, err := g.caller.Call(ctx, spendProcedure, promptID, amount)
	if err != nil {
		g.logger.Warn("Spend transport failure", map[string]any{
			"prompt_id": promptID,
			"error":     err.Error(),
		})
		return platform.SpendResult{Outcome: platform.OutcomeUnknown, Message: err.Error()}
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		g.logger.Error("Undecodable spend response", map[string]any{
			"prompt_id": promptID,
			"error":     err.Error(),
		})
		return platform.SpendResult{Outcome: platform.OutcomeUnknown, Message: "undecodable ledger response"}
	}

	return platform.SpendResult{
		Outcome:          env.outcome(),
		CreditsRemaining: intOr(env.CreditsRemaining, 0),
		Required:         intOr(env.RequiredCredits, intOr(env.Required, amount)),
		Available:        intOr(env.CurrentCredits, intOr(env.Available, 0)),
		Message:          env.Message,
	}
}

// Earn invokes add_credits with a reward reason tag
func (g *Gateway) Earn(ctx context.Context, amount int, reason string) platform.EarnResult {
	raw, err := g.caller.Call(ctx, earnProcedure, amount, reason)
	if err != nil {
		g.logger.Warn("Earn transport failure", map[string]any{
			"reason": reason,
			"error":  err.Error(),
		})
		return platform.EarnResult{Outcome: platform.OutcomeUnknown, Message: err.Error()}
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		g.logger.Error("Undecodable earn response", map[string]any{
			"reason": reason,
			"error":  err.Error(),
		})
		return platform.EarnResult{Outcome: platform.OutcomeUnknown, Message: "undecodable ledger response"}
	}

	return platform.EarnResult{
		Outcome:      env.outcome(),
		CreditsTotal: intOr(env.CreditsTotal, 0),
		Message:      env.Message,
	}
}

// Unlock invokes unlock_prompt for a permanent purchase
func (g *Gateway) Unlock(ctx context.Context, promptID string, cost int) platform.UnlockResult {
	raw, err := g.caller.Call(ctx, unlockProcedure, promptID, cost)
	if err != nil {
		g.logger.Warn("Unlock transport failure", map[string]any{
			"prompt_id": promptID,
			"error":     err.Error(),
		})
		return platform.UnlockResult{Outcome: platform.OutcomeUnknown, Message: err.Error()}
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		g.logger.Error("Undecodable unlock response", map[string]any{
			"prompt_id": promptID,
			"error":     err.Error(),
		})
		return platform.UnlockResult{Outcome: platform.OutcomeUnknown, Message: "undecodable ledger response"}
	}

	return platform.UnlockResult{
		Outcome:          env.outcome(),
		AlreadyOwned:     env.AlreadyOwned,
		CreditsRemaining: intOr(env.CreditsRemaining, 0),
		Required:         intOr(env.Required, intOr(env.RequiredCredits, cost)),
		Available:        intOr(env.Available, intOr(env.CurrentCredits, 0)),
		Message:          env.Message,
	}
}
