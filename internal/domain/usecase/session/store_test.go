package session

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

func silentLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func activeSession() *platform.Session {
	return &platform.Session{
		UserID:      "user-1",
		Email:       "buyer@example.com",
		AccessToken: "token",
	}
}

func TestEstablish(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful establishment caches the profile", func(t *testing.T) {
		// Setup mocks
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Email:   "buyer@example.com",
			Credits: 850,
		}, nil).Once()

		store := NewStore(mockProfiles, silentLogger(t))

		// Execute
		err := store.Establish(ctx, activeSession())

		// Assertions
		require.NoError(t, err)
		assert.True(t, store.SignedIn())
		assert.Equal(t, 850, store.Credits())
	})

	t.Run("Nil session is rejected", func(t *testing.T) {
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		store := NewStore(mockProfiles, silentLogger(t))

		err := store.Establish(ctx, nil)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.False(t, store.SignedIn())
	})

	t.Run("Profile fetch failure leaves the store signed out", func(t *testing.T) {
		// Setup mocks
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").
			Return(nil, errs.ErrProfileNotFound).Once()

		store := NewStore(mockProfiles, silentLogger(t))

		// Execute
		err := store.Establish(ctx, activeSession())

		// Assertions
		assert.ErrorIs(t, err, errs.ErrProfileNotFound)
		assert.False(t, store.SignedIn())
		assert.Zero(t, store.Credits())
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Refresh swaps the whole snapshot at once", func(t *testing.T) {
		// Setup mocks
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Credits: 850,
		}, nil).Once()
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Credits: 860,
		}, nil).Once()

		store := NewStore(mockProfiles, silentLogger(t))
		require.NoError(t, store.Establish(ctx, activeSession()))

		// Execute
		err := store.Refresh(ctx)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, 860, store.Credits())
	})

	t.Run("Refresh while signed out is rejected without a fetch", func(t *testing.T) {
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		store := NewStore(mockProfiles, silentLogger(t))

		err := store.Refresh(ctx)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Failed refresh keeps the previous snapshot", func(t *testing.T) {
		// Setup mocks
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Credits: 850,
		}, nil).Once()
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").
			Return(nil, errors.New("connection reset")).Once()

		store := NewStore(mockProfiles, silentLogger(t))
		require.NoError(t, store.Establish(ctx, activeSession()))

		// Execute
		err := store.Refresh(ctx)

		// Assertions
		require.Error(t, err)
		assert.Equal(t, 850, store.Credits())
	})

	t.Run("Sign-out during an in-flight refresh discards the result", func(t *testing.T) {
		// Setup mocks
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		store := NewStore(mockProfiles, silentLogger(t))

		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Credits: 850,
		}, nil).Once()
		require.NoError(t, store.Establish(ctx, activeSession()))

		// The second fetch tears the store down before returning, simulating
		// a sign-out racing the refresh
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").RunAndReturn(
			func(context.Context, string) (*entity.Profile, error) {
				store.Clear()
				return &entity.Profile{ID: "user-1", Credits: 860}, nil
			}).Once()

		// Execute
		err := store.Refresh(ctx)

		// Assertions
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.False(t, store.SignedIn())
		assert.Zero(t, store.Credits())
	})
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Snapshot returns copies the caller cannot mutate through", func(t *testing.T) {
		// Setup mocks
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Credits: 850,
		}, nil).Once()

		store := NewStore(mockProfiles, silentLogger(t))
		require.NoError(t, store.Establish(ctx, activeSession()))

		// Execute
		sess, profile := store.Snapshot()
		require.NotNil(t, sess)
		require.NotNil(t, profile)
		profile.Credits = 0
		sess.UserID = "someone-else"

		// Assertions
		assert.Equal(t, 850, store.Credits())
		again, _ := store.Snapshot()
		assert.Equal(t, "user-1", again.UserID)
	})

	t.Run("Snapshot while signed out is empty", func(t *testing.T) {
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		store := NewStore(mockProfiles, silentLogger(t))

		sess, profile := store.Snapshot()

		assert.Nil(t, sess)
		assert.Nil(t, profile)
	})

	t.Run("Clear tears down both session and profile", func(t *testing.T) {
		// Setup mocks
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Credits: 850,
		}, nil).Once()

		store := NewStore(mockProfiles, silentLogger(t))
		require.NoError(t, store.Establish(ctx, activeSession()))

		// Execute
		store.Clear()

		// Assertions
		assert.False(t, store.SignedIn())
		assert.Zero(t, store.Credits())
	})
}
