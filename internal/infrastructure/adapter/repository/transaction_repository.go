package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/model"
)

// TransactionRepository reads the append-only ledger using GORM. There is
// deliberately no write path: ledger entries are created exclusively by the
// server-side procedures.
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns the user's most recent ledger entries, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Database error when listing transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	entries := make([]*entity.Transaction, len(rows))
	for i := range rows {
		entries[i] = rows[i].ToEntity()
	}
	return entries, nil
}
