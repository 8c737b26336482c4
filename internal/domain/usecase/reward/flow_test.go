package reward

import (
	"context"
	"testing"
	"time"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	"github.com/prompter-labs/prompter/internal/domain/usecase/session"
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

// testConfig uses hour-long ticks so the background ticker never fires and
// every countdown step is driven explicitly through Tick
func testConfig() Config {
	return Config{
		WatchDuration: 3 * time.Hour,
		TickInterval:  time.Hour,
		ClaimAmount:   10,
		Pick:          func(int) int { return 0 },
	}
}

func testPool() []AdItem {
	return []AdItem{
		{ID: "ad-1", Title: "Try PromptForge Pro"},
		{ID: "ad-2", Title: "Render faster with GPUCloud"},
	}
}

func watcherStore(t *testing.T, profiles *platformmocks.MockProfileRepository) *session.Store {
	store := session.NewStore(profiles, quietLogger(t))
	profiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
		ID:      "user-1",
		Credits: 40,
	}, nil).Once()
	require.NoError(t, store.Establish(context.Background(), &platform.Session{
		UserID:      "user-1",
		AccessToken: "token",
	}))
	return store
}

func TestFlowCountdown(t *testing.T) {
	t.Run("Start picks an ad and arms the countdown", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		flow := NewFlow(testPool(), mockLedger, store, mockTime, quietLogger(t), testConfig())

		// Execute
		ad := flow.Start()

		// Assertions
		require.NotNil(t, ad)
		assert.Equal(t, "ad-1", ad.ID)
		assert.Equal(t, StateWatching, flow.State())
		assert.Equal(t, 3, flow.Remaining())
	})

	t.Run("Empty pool cannot start a watch session", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		flow := NewFlow(nil, mockLedger, store, mockTime, quietLogger(t), testConfig())

		// Execute
		ad := flow.Start()

		// Assertions
		assert.Nil(t, ad)
		assert.Equal(t, StateMenu, flow.State())
	})

	t.Run("Countdown strictly decreases and never goes negative", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		flow := NewFlow(testPool(), mockLedger, store, mockTime, quietLogger(t), testConfig())
		flow.Start()

		// Execute
		assert.False(t, flow.Tick())
		assert.Equal(t, 2, flow.Remaining())
		assert.False(t, flow.Tick())
		assert.Equal(t, 1, flow.Remaining())
		assert.True(t, flow.Tick())

		// Assertions
		assert.Equal(t, 0, flow.Remaining())
		assert.Equal(t, StateClaimable, flow.State())

		// Ticks after the countdown finished change nothing
		assert.True(t, flow.Tick())
		assert.Equal(t, 0, flow.Remaining())
		assert.Equal(t, StateClaimable, flow.State())
	})

	t.Run("Close abandons the countdown and returns to the menu", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		flow := NewFlow(testPool(), mockLedger, store, mockTime, quietLogger(t), testConfig())
		flow.Start()
		flow.Tick()

		// Execute
		flow.Close()

		// Assertions
		assert.Equal(t, StateMenu, flow.State())
		assert.Equal(t, 0, flow.Remaining())
		assert.Nil(t, flow.Current())
	})
}

func TestFlowClaim(t *testing.T) {
	ctx := context.Background()

	// finishWatch drives a fresh watch session through its full countdown
	finishWatch := func(f *Flow) {
		f.Start()
		for f.State() == StateWatching {
			f.Tick()
		}
	}

	t.Run("Claim before the countdown ends is rejected", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		flow := NewFlow(testPool(), mockLedger, store, mockTime, quietLogger(t), testConfig())
		flow.Start()
		flow.Tick()

		// Execute
		credits, err := flow.Claim(ctx)

		// Assertions
		assert.ErrorIs(t, err, errs.ErrClaimNotReady)
		assert.Zero(t, credits)
	})

	t.Run("Claim from the menu is rejected", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		flow := NewFlow(testPool(), mockLedger, store, mockTime, quietLogger(t), testConfig())

		// Execute
		_, err := flow.Claim(ctx)

		// Assertions
		assert.ErrorIs(t, err, errs.ErrClaimNotReady)
	})

	t.Run("At most one claim succeeds per watch session", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		// Setup expectations: the auto-close sleep never returns so the flow
		// stays observable in the Claimed state
		mockTime.EXPECT().Sleep(mock.Anything).Run(func(time.Duration) {
			select {}
		}).Maybe()
		mockLedger.EXPECT().Earn(mock.Anything, 10, RewardReason).Return(platform.EarnResult{
			Outcome:      platform.OutcomeOK,
			CreditsTotal: 50,
		}).Once()
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Credits: 50,
		}, nil).Once()

		flow := NewFlow(testPool(), mockLedger, store, mockTime, quietLogger(t), testConfig())
		finishWatch(flow)

		// Execute
		credits, err := flow.Claim(ctx)
		_, second := flow.Claim(ctx)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, 50, credits)
		assert.Equal(t, StateClaimed, flow.State())
		assert.Equal(t, 50, store.Credits())
		assert.ErrorIs(t, second, errs.ErrAlreadyClaimed)
	})

	t.Run("Failed claim stays claimable for a manual retry", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		// Setup expectations
		mockTime.EXPECT().Sleep(mock.Anything).Run(func(time.Duration) {
			select {}
		}).Maybe()
		mockLedger.EXPECT().Earn(mock.Anything, 10, RewardReason).Return(platform.EarnResult{
			Outcome: platform.OutcomeUnknown,
			Message: "request timed out",
		}).Once()
		mockLedger.EXPECT().Earn(mock.Anything, 10, RewardReason).Return(platform.EarnResult{
			Outcome:      platform.OutcomeOK,
			CreditsTotal: 50,
		}).Once()
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Credits: 50,
		}, nil).Once()

		flow := NewFlow(testPool(), mockLedger, store, mockTime, quietLogger(t), testConfig())
		finishWatch(flow)

		// Execute
		_, err := flow.Claim(ctx)
		require.Error(t, err)
		assert.Equal(t, StateClaimable, flow.State())

		credits, err := flow.Claim(ctx)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, 50, credits)
		assert.Equal(t, StateClaimed, flow.State())
	})

	t.Run("Unauthorized claim maps to the session error", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		// Setup expectations
		mockLedger.EXPECT().Earn(mock.Anything, 10, RewardReason).Return(platform.EarnResult{
			Outcome: platform.OutcomeUnauthorized,
		}).Once()

		flow := NewFlow(testPool(), mockLedger, store, mockTime, quietLogger(t), testConfig())
		finishWatch(flow)

		// Execute
		_, err := flow.Claim(ctx)

		// Assertions
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, StateClaimable, flow.State())
	})

	t.Run("Restarting resets the claim guard and a stale auto-close is ignored", func(t *testing.T) {
		// Setup mocks
		mockLedger := platformmocks.NewMockLedgerGateway(t)
		mockProfiles := platformmocks.NewMockProfileRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		store := watcherStore(t, mockProfiles)

		gate := make(chan struct{})

		// Setup expectations
		mockTime.EXPECT().Sleep(mock.Anything).Run(func(time.Duration) {
			<-gate
		}).Maybe()
		mockLedger.EXPECT().Earn(mock.Anything, 10, RewardReason).Return(platform.EarnResult{
			Outcome:      platform.OutcomeOK,
			CreditsTotal: 50,
		}).Twice()
		mockProfiles.EXPECT().GetByID(mock.Anything, "user-1").Return(&entity.Profile{
			ID:      "user-1",
			Credits: 50,
		}, nil).Twice()

		flow := NewFlow(testPool(), mockLedger, store, mockTime, quietLogger(t), testConfig())
		finishWatch(flow)

		_, err := flow.Claim(ctx)
		require.NoError(t, err)

		// Execute: start a new session, then let the previous session's
		// auto-close fire. The stale close must not clobber the new session.
		finishWatch(flow)
		close(gate)
		time.Sleep(20 * time.Millisecond)

		// Assertions
		assert.Equal(t, StateClaimable, flow.State())

		credits, err := flow.Claim(ctx)
		require.NoError(t, err)
		assert.Equal(t, 50, credits)
	})
}
