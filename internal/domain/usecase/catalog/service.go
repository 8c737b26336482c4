package catalog

import (
	"context"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
)

// DetailView is a prompt plus the viewer's ownership of it. When Owned is
// false the prompt text has been redacted.
type DetailView struct {
	Prompt *entity.Prompt
	Owned  bool
}

// Service serves catalog browsing and the per-prompt ownership check
type Service struct {
	prompts   platform.PromptRepository
	purchases platform.PurchaseRepository
	logger    coreport.Logger
}

// NewService creates a catalog service
func NewService(
	prompts platform.PromptRepository,
	purchases platform.PurchaseRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		prompts:   prompts,
		purchases: purchases,
		logger:    logger,
	}
}

// List returns catalog entries matching the filter. Listings never carry the
// sellable text regardless of who asks.
func (s *Service) List(ctx context.Context, filter platform.PromptFilter) ([]*entity.Prompt, error) {
	prompts, err := s.prompts.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list prompts", map[string]any{
			"filter": map[string]any{
				"model":      filter.Model,
				"media_type": filter.MediaType,
				"category":   filter.Category,
			},
			"error": err.Error(),
		})
		return nil, err
	}

	redacted := make([]*entity.Prompt, len(prompts))
	for i, p := range prompts {
		redacted[i] = p.Redacted()
	}
	return redacted, nil
}

// Detail fetches one prompt and answers "has this viewer already paid for
// it". A failed ownership query defaults to locked, never to unlocked; the
// spend/unlock procedures stay the authoritative gate either way.
func (s *Service) Detail(ctx context.Context, promptID, userID string) (*DetailView, error) {
	if promptID == "" {
		return nil, errs.ErrInvalidPromptID
	}

	prompt, err := s.prompts.GetByID(ctx, promptID)
	if err != nil {
		return nil, err
	}

	owned := false
	if userID != "" {
		owned, err = s.purchases.Exists(ctx, userID, promptID)
		if err != nil {
			s.logger.Warn("Ownership check failed, rendering locked", map[string]any{
				"prompt_id": promptID,
				"user_id":   userID,
				"error":     err.Error(),
			})
			owned = false
		}
	}

	if !owned {
		prompt = prompt.Redacted()
	}
	return &DetailView{Prompt: prompt, Owned: owned}, nil
}
