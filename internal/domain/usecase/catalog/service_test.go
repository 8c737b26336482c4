package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
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

func catalogPrompts() []*entity.Prompt {
	return []*entity.Prompt{
		{ID: "prompt-1", Title: "Cinematic portrait", PromptText: "secret one", Cost: 25, Model: "midjourney"},
		{ID: "prompt-2", Title: "Neon cityscape", PromptText: "secret two", Cost: 40, Model: "dalle"},
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Listings never carry the prompt text", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockPurchases := platformmocks.NewMockPurchaseRepository(t)
		filter := platform.PromptFilter{Model: "midjourney"}

		mockPrompts.EXPECT().List(mock.Anything, filter).Return(catalogPrompts(), nil).Once()

		service := NewService(mockPrompts, mockPurchases, quietLogger(t))

		// Execute
		prompts, err := service.List(ctx, filter)

		// Assertions
		require.NoError(t, err)
		require.Len(t, prompts, 2)
		for _, p := range prompts {
			assert.Empty(t, p.PromptText)
			assert.True(t, p.Locked())
		}
		assert.Equal(t, "Cinematic portrait", prompts[0].Title)
	})

	t.Run("Repository failure is propagated", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockPurchases := platformmocks.NewMockPurchaseRepository(t)

		mockPrompts.EXPECT().List(mock.Anything, mock.Anything).
			Return(nil, errs.ErrDatabaseConnection).Once()

		service := NewService(mockPrompts, mockPurchases, quietLogger(t))

		// Execute
		prompts, err := service.List(ctx, platform.PromptFilter{})

		// Assertions
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, prompts)
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner sees the full prompt text", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockPurchases := platformmocks.NewMockPurchaseRepository(t)

		mockPrompts.EXPECT().GetByID(mock.Anything, "prompt-1").
			Return(catalogPrompts()[0], nil).Once()
		mockPurchases.EXPECT().Exists(mock.Anything, "user-1", "prompt-1").Return(true, nil).Once()

		service := NewService(mockPrompts, mockPurchases, quietLogger(t))

		// Execute
		view, err := service.Detail(ctx, "prompt-1", "user-1")

		// Assertions
		require.NoError(t, err)
		assert.True(t, view.Owned)
		assert.Equal(t, "secret one", view.Prompt.PromptText)
	})

	t.Run("Non-owner gets a redacted view", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockPurchases := platformmocks.NewMockPurchaseRepository(t)

		mockPrompts.EXPECT().GetByID(mock.Anything, "prompt-1").
			Return(catalogPrompts()[0], nil).Once()
		mockPurchases.EXPECT().Exists(mock.Anything, "user-1", "prompt-1").Return(false, nil).Once()

		service := NewService(mockPrompts, mockPurchases, quietLogger(t))

		// Execute
		view, err := service.Detail(ctx, "prompt-1", "user-1")

		// Assertions
		require.NoError(t, err)
		assert.False(t, view.Owned)
		assert.True(t, view.Prompt.Locked())
	})

	t.Run("Anonymous viewer skips the ownership check", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockPurchases := platformmocks.NewMockPurchaseRepository(t)

		mockPrompts.EXPECT().GetByID(mock.Anything, "prompt-1").
			Return(catalogPrompts()[0], nil).Once()

		service := NewService(mockPrompts, mockPurchases, quietLogger(t))

		// Execute
		view, err := service.Detail(ctx, "prompt-1", "")

		// Assertions
		require.NoError(t, err)
		assert.False(t, view.Owned)
		assert.True(t, view.Prompt.Locked())
	})

	t.Run("Failed ownership check renders locked, never unlocked", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockPurchases := platformmocks.NewMockPurchaseRepository(t)

		mockPrompts.EXPECT().GetByID(mock.Anything, "prompt-1").
			Return(catalogPrompts()[0], nil).Once()
		mockPurchases.EXPECT().Exists(mock.Anything, "user-1", "prompt-1").
			Return(false, errors.New("connection reset")).Once()

		service := NewService(mockPrompts, mockPurchases, quietLogger(t))

		// Execute
		view, err := service.Detail(ctx, "prompt-1", "user-1")

		// Assertions
		require.NoError(t, err)
		assert.False(t, view.Owned)
		assert.True(t, view.Prompt.Locked())
	})

	t.Run("Unknown prompt is reported as not found", func(t *testing.T) {
		// Setup mocks
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockPurchases := platformmocks.NewMockPurchaseRepository(t)

		mockPrompts.EXPECT().GetByID(mock.Anything, "missing").
			Return(nil, errs.ErrPromptNotFound).Once()

		service := NewService(mockPrompts, mockPurchases, quietLogger(t))

		// Execute
		view, err := service.Detail(ctx, "missing", "user-1")

		// Assertions
		assert.ErrorIs(t, err, errs.ErrPromptNotFound)
		assert.Nil(t, view)
	})

	t.Run("Empty prompt ID is rejected up front", func(t *testing.T) {
		mockPrompts := platformmocks.NewMockPromptRepository(t)
		mockPurchases := platformmocks.NewMockPurchaseRepository(t)
		service := NewService(mockPrompts, mockPurchases, quietLogger(t))

		_, err := service.Detail(ctx, "", "user-1")

		assert.ErrorIs(t, err, errs.ErrInvalidPromptID)
	})
}
