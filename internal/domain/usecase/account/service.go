package account

import (
	"context"
	"strings"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	"github.com/prompter-labs/prompter/internal/domain/usecase/session"
)

// Service covers the settings surface: username changes and ledger history
type Service struct {
	profiles     platform.ProfileRepository
	transactions platform.TransactionRepository
	logger       coreport.Logger
}

// NewService creates an account service
func NewService(
	profiles platform.ProfileRepository,
	transactions platform.TransactionRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		profiles:     profiles,
		transactions: transactions,
		logger:       logger,
	}
}

// UpdateUsername changes the signed-in user's display name and refreshes the
// session store so every surface shows the new name
func (s *Service) UpdateUsername(ctx context.Context, store *session.Store, username string) error {
	sess, _ := store.Snapshot()
	if sess == nil {
		return errs.ErrUnauthorized
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return errs.ErrInvalidRequest
	}

	if err := s.profiles.UpdateUsername(ctx, sess.UserID, username); err != nil {
		s.logger.Error("Failed to update username", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
		return err
	}

	if err := store.Refresh(ctx); err != nil {
		s.logger.Warn("Profile refresh after username update failed", map[string]any{
			"user_id": sess.UserID,
			"error":   err.Error(),
		})
	}
	return nil
}

// History returns the user's most recent ledger entries, newest first
func (s *Service) History(ctx context.Context, store *session.Store, limit int) ([]*entity.Transaction, error) {
	sess, _ := store.Snapshot()
	if sess == nil {
		return nil, errs.ErrUnauthorized
	}
	if limit <= 0 {
		limit = 50
	}
	return s.transactions.ListByUser(ctx, sess.UserID, limit)
}
