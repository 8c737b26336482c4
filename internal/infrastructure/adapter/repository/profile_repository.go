package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/model"
)

// escapeLike neutralizes LIKE metacharacters in user-supplied prefixes
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

// ProfileRepository implements platform.ProfileRepository using GORM.
// Credits are read-only here; only the ledger procedures mutate balances.
type ProfileRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewProfileRepository creates a new ProfileRepository instance
func NewProfileRepository(db *gorm.DB, logger coreport.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a profile by user id
func (r *ProfileRepository) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	var row model.Profile
	result := r.db.WithContext(ctx).First(&row, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProfileNotFound
		}
		r.logger.Error("Database error when getting profile", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return row.ToEntity(), nil
}

// UpdateUsername changes the profile's display name only
func (r *ProfileRepository) UpdateUsername(ctx context.Context, userID, username string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ?", userID).
		Update("username", username)
	if result.Error != nil {
		r.logger.Error("Database error when updating username", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrProfileNotFound
	}
	return nil
}
