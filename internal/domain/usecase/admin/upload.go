package admin

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
)

// UploadInput is the admin upload form payload
type UploadInput struct {
	Title       string
	Description string
	Model       string
	Category    string
	MediaType   entity.MediaType
	Cost        int
	PromptText  string
	Author      string
	Featured    bool

	// Media is the optional preview asset; nil means no upload
	Media            io.Reader
	MediaFilename    string
	MediaContentType string
}

// Service creates catalog entries: media goes to object storage, the row
// goes to the prompts table. Admin only.
type Service struct {
	prompts      platform.PromptRepository
	storage      platform.ObjectStorage
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates an admin upload service
func NewService(
	prompts platform.PromptRepository,
	storage platform.ObjectStorage,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		prompts:      prompts,
		storage:      storage,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Upload validates the form, stores the media asset and inserts the prompt.
// The actor must carry the admin role; everyone else gets ErrForbidden before
// anything is written.
func (s *Service) Upload(ctx context.Context, actor *entity.Profile, input UploadInput) (*entity.Prompt, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	prompt, err := entity.NewPrompt(uuid.NewString(), input.Title, input.PromptText, input.Cost, input.MediaType, s.timeProvider)
	if err != nil {
		return nil, err
	}
	prompt.Description = input.Description
	prompt.Model = input.Model
	prompt.Category = input.Category
	prompt.Author = input.Author
	prompt.Featured = input.Featured

	if input.Media != nil {
		key := storageKey(input.Title, input.MediaFilename)
		url, err := s.storage.Upload(ctx, key, input.MediaContentType, input.Media)
		if err != nil {
			s.logger.Error("Media upload failed", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
			return nil, err
		}
		prompt.MediaURL = url
	}

	if err := s.prompts.Create(ctx, prompt); err != nil {
		s.logger.Error("Failed to insert prompt", map[string]any{
			"prompt_id": prompt.ID,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Prompt uploaded", map[string]any{
		"prompt_id": prompt.ID,
		"title":     prompt.Title,
		"cost":      prompt.Cost,
		"admin_id":  actor.ID,
	})
	return prompt, nil
}

// storageKey builds a collision-free key from the slugified title
func storageKey(title, filename string) string {
	ext := path.Ext(filename)
	return fmt.Sprintf("prompt-assets/%s-%s%s", entity.Slugify(title), uuid.NewString(), ext)
}
