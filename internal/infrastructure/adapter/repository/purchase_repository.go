package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/model"
)

// PurchaseRepository implements platform.PurchaseRepository using GORM
type PurchaseRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, logger coreport.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:     db,
		logger: logger,
	}
}

// Exists reports whether a purchase row exists for (user, prompt)
func (r *PurchaseRepository) Exists(ctx context.Context, userID, promptID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Where("user_id = ? AND prompt_id = ?", userID, promptID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("Database error when checking ownership", map[string]any{
			"user_id":   userID,
			"prompt_id": promptID,
			"error":     err.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return count > 0, nil
}
