package dto

import (
	"time"

	"github.com/prompter-labs/prompter/internal/domain/entity"
)

// ProfileResponse is the signed-in user's profile snapshot
type ProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Credits  int    `json:"credits"`
	Role     string `json:"role"`
}

// FromProfile maps a domain profile into its API shape
func FromProfile(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:       p.ID,
		Email:    p.Email,
		Username: p.Username,
		Credits:  p.Credits,
		Role:     string(p.Role),
	}
}

// UpdateUsernameRequest is the settings form payload
type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

// TransactionResponse is one ledger history entry
type TransactionResponse struct {
	ID          string    `json:"id"`
	PromptID    *string   `json:"prompt_id,omitempty"`
	Amount      int       `json:"amount"`
	Kind        string    `json:"kind"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromTransaction maps a ledger entry into its API shape
func FromTransaction(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		PromptID:    t.PromptID,
		Amount:      t.Amount,
		Kind:        string(t.Kind),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// PlanResponse is one pricing plan
type PlanResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PriceUSD float64 `json:"price_usd"`
	Credits  int     `json:"credits"`
	Popular  bool    `json:"popular"`
}

// FromPlan maps a pricing plan into its API shape
func FromPlan(p entity.Plan) PlanResponse {
	return PlanResponse{
		ID:       p.ID,
		Name:     p.Name,
		PriceUSD: p.PriceUSD,
		Credits:  p.Credits,
		Popular:  p.Popular,
	}
}
