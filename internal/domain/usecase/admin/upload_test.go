package admin

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coremocks "github.com/prompter-labs/prompter/mocks/port/core"
	platformmocks "github.com/prompter-labs/prompter/mocks/port/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func adminActor() *entity.Profile {
	return &entity.Profile{ID: "admin-1", Email: "admin@example.com", Role: entity.RoleAdmin}
}

func validInput() UploadInput {
	return UploadInput{
		Title:      "Cinematic Portrait",
		Model:      "midjourney",
		Category:   "photography",
		MediaType:  entity.MediaImage,
		Cost:       25,
		PromptText: "ultra detailed cinematic portrait, 85mm",
		Author:     "PromptER Studio",
	}
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful upload stores the media and inserts the prompt", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockStorage := platformmocks.NewMockObjectStorage(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		// Setup expectations
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockStorage.EXPECT().Upload(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "prompt-assets/cinematic-portrait-") &&
				strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything).
			Return("https://cdn.example.com/prompt-assets/cinematic-portrait.png", nil).Once()
		mockPrompts.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Prompt) bool {
			return p.Title == "Cinematic Portrait" &&
				p.Cost == 25 &&
				p.MediaURL == "https://cdn.example.com/prompt-assets/cinematic-portrait.png"
		})).Return(nil).Once()

		service := NewService(mockPrompts, mockStorage, mockTime, quietLogger(t))

		input := validInput()
		input.Media = strings.NewReader("fake image bytes")
		input.MediaFilename = "portrait.png"
		input.MediaContentType = "image/png"

		// Execute
		prompt, err := service.Upload(ctx, adminActor(), input)

		// Assertions
		require.NoError(t, err)
		assert.NotEmpty(t, prompt.ID)
		assert.Equal(t, "midjourney", prompt.Model)
		assert.Equal(t, fixedTime, prompt.CreatedAt)
	})

	t.Run("Upload without media skips object storage", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockStorage := platformmocks.NewMockObjectStorage(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		// Setup expectations
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockPrompts.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Prompt) bool {
			return p.MediaURL == ""
		})).Return(nil).Once()

		service := NewService(mockPrompts, mockStorage, mockTime, quietLogger(t))

		// Execute
		prompt, err := service.Upload(ctx, adminActor(), validInput())

		// Assertions
		require.NoError(t, err)
		assert.Empty(t, prompt.MediaURL)
	})

	t.Run("Non-admin is rejected before anything is written", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockStorage := platformmocks.NewMockObjectStorage(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		service := NewService(mockPrompts, mockStorage, mockTime, quietLogger(t))

		actor := &entity.Profile{ID: "user-1", Role: entity.RoleUser}

		// Execute
		prompt, err := service.Upload(ctx, actor, validInput())

		// Assertions
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Nil(t, prompt)
	})

	t.Run("Missing actor is rejected", func(t *testing.T) {
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockStorage := platformmocks.NewMockObjectStorage(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		service := NewService(mockPrompts, mockStorage, mockTime, quietLogger(t))

		_, err := service.Upload(ctx, nil, validInput())

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Invalid form fields fail validation", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockStorage := platformmocks.NewMockObjectStorage(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		service := NewService(mockPrompts, mockStorage, mockTime, quietLogger(t))

		tests := []struct {
			name    string
			mutate  func(*UploadInput)
			wantErr error
		}{
			{"empty title", func(i *UploadInput) { i.Title = "  " }, errs.ErrEmptyTitle},
			{"empty prompt text", func(i *UploadInput) { i.PromptText = "" }, errs.ErrEmptyPromptText},
			{"zero cost", func(i *UploadInput) { i.Cost = 0 }, errs.ErrInvalidCost},
			{"bad media type", func(i *UploadInput) { i.MediaType = "hologram" }, errs.ErrInvalidMediaType},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := validInput()
				tt.mutate(&input)

				_, err := service.Upload(ctx, adminActor(), input)

				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("Storage failure aborts before the insert", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockStorage := platformmocks.NewMockObjectStorage(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		// Setup expectations
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockStorage.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("bucket unavailable")).Once()

		service := NewService(mockPrompts, mockStorage, mockTime, quietLogger(t))

		input := validInput()
		input.Media = strings.NewReader("fake image bytes")
		input.MediaFilename = "portrait.png"
		input.MediaContentType = "image/png"

		// Execute
		prompt, err := service.Upload(ctx, adminActor(), input)

		// Assertions
		require.Error(t, err)
		assert.Nil(t, prompt)
	})

	t.Run("Insert failure is propagated", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockStorage := platformmocks.NewMockObjectStorage(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		// Setup expectations
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockPrompts.EXPECT().Create(mock.Anything, mock.Anything).
			Return(errs.ErrDatabaseConnection).Once()

		service := NewService(mockPrompts, mockStorage, mockTime, quietLogger(t))

		// Execute
		prompt, err := service.Upload(ctx, adminActor(), validInput())

		// Assertions
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, prompt)
	})
}
