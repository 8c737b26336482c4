package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/model"
)

const defaultListLimit = 60

// PromptRepository implements platform.PromptRepository using GORM
type PromptRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPromptRepository creates a new PromptRepository instance
func NewPromptRepository(db *gorm.DB, logger coreport.Logger) *PromptRepository {
	return &PromptRepository{
		db:     db,
		logger: logger,
	}
}

// List returns prompts matching the filter, newest first. Model, media type
// and category are equality filters; the title filter is a prefix match.
func (r *PromptRepository) List(ctx context.Context, filter platform.PromptFilter) ([]*entity.Prompt, error) {
	query := r.db.WithContext(ctx).Model(&model.Prompt{})

	if filter.Model != "" {
		query = query.Where("model = ?", filter.Model)
	}
	if filter.MediaType != "" {
		query = query.Where("media_type = ?", filter.MediaType)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.TitlePrefix != "" {
		query = query.Where("title ILIKE ?", escapeLike(filter.TitlePrefix)+"%")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var rows []model.Prompt
	if err := query.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		r.logger.Error("Database error when listing prompts", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	prompts := make([]*entity.Prompt, len(rows))
	for i := range rows {
		prompts[i] = rows[i].ToEntity()
	}
	return prompts, nil
}

// GetByID retrieves a single prompt by its id
func (r *PromptRepository) GetByID(ctx context.Context, id string) (*entity.Prompt, error) {
	var row model.Prompt
	result := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPromptNotFound
		}
		r.logger.Error("Database error when getting prompt", map[string]any{
			"prompt_id": id,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return row.ToEntity(), nil
}

// Create inserts a new catalog entry (admin upload path)
func (r *PromptRepository) Create(ctx context.Context, prompt *entity.Prompt) error {
	row := model.PromptFromEntity(prompt)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.logger.Error("Database error when creating prompt", map[string]any{
			"prompt_id": prompt.ID,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}
