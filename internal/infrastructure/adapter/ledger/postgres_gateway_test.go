package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	coremocks "github.com/prompter-labs/prompter/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// stubCaller returns a canned payload and records every invocation
type stubCaller struct {
	raw   string
	err   error
	calls int
	query string
	args  []any
}

func (s *stubCaller) Call(_ context.Context, query string, args ...any) (string, error) {
	s.calls++
	s.query = query
	s.args = args
	return s.raw, s.err
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestSpend(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirmed debit", func(t *testing.T) {
		caller := &stubCaller{raw: `{"success":true,"credits_remaining":75,"message":"debited"}`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Spend(ctx, "prompt-1", 25)

		assert.Equal(t, platform.OutcomeOK, res.Outcome)
		assert.Equal(t, 75, res.CreditsRemaining)
		assert.Equal(t, "debited", res.Message)
		assert.Equal(t, spendProcedure, caller.query)
		assert.Equal(t, []any{"prompt-1", 25}, caller.args)
	})

	t.Run("Insufficient funds carries required and available", func(t *testing.T) {
		caller := &stubCaller{raw: `{"success":false,"error":"insufficient_credits","required_credits":25,"current_credits":5}`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Spend(ctx, "prompt-1", 25)

		assert.Equal(t, platform.OutcomeInsufficientFunds, res.Outcome)
		assert.Equal(t, 25, res.Required)
		assert.Equal(t, 5, res.Available)
	})

	t.Run("Server-side auth failure maps to unauthorized", func(t *testing.T) {
		caller := &stubCaller{raw: `{"success":false,"error":"not_authenticated"}`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Spend(ctx, "prompt-1", 25)

		assert.Equal(t, platform.OutcomeUnauthorized, res.Outcome)
	})

	t.Run("Unrecognized error string maps to unknown", func(t *testing.T) {
		caller := &stubCaller{raw: `{"success":false,"error":"deadlock_detected"}`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Spend(ctx, "prompt-1", 25)

		assert.Equal(t, platform.OutcomeUnknown, res.Outcome)
	})

	t.Run("Transport failure is unknown and never retried", func(t *testing.T) {
		caller := &stubCaller{err: errors.New("connection reset by peer")}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Spend(ctx, "prompt-1", 25)

		assert.Equal(t, platform.OutcomeUnknown, res.Outcome)
		assert.Equal(t, 1, caller.calls)
	})

	t.Run("Undecodable payload is unknown", func(t *testing.T) {
		caller := &stubCaller{raw: `<html>bad gateway</html>`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Spend(ctx, "prompt-1", 25)

		assert.Equal(t, platform.OutcomeUnknown, res.Outcome)
		assert.Equal(t, "undecodable ledger response", res.Message)
	})

	t.Run("String-wrapped envelope is unwrapped", func(t *testing.T) {
		caller := &stubCaller{raw: `"{\"success\":true,\"credits_remaining\":75}"`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Spend(ctx, "prompt-1", 25)

		assert.Equal(t, platform.OutcomeOK, res.Outcome)
		assert.Equal(t, 75, res.CreditsRemaining)
	})

	t.Run("Missing counters fall back to the request amount", func(t *testing.T) {
		caller := &stubCaller{raw: `{"success":false,"error":"insufficient_funds"}`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Spend(ctx, "prompt-1", 25)

		assert.Equal(t, platform.OutcomeInsufficientFunds, res.Outcome)
		assert.Equal(t, 25, res.Required)
		assert.Zero(t, res.Available)
	})
}

func TestEarn(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirmed credit carries the new total", func(t *testing.T) {
		caller := &stubCaller{raw: `{"success":true,"credits_total":110}`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Earn(ctx, 10, "ad_reward")

		assert.Equal(t, platform.OutcomeOK, res.Outcome)
		assert.Equal(t, 110, res.CreditsTotal)
		assert.Equal(t, earnProcedure, caller.query)
		assert.Equal(t, []any{10, "ad_reward"}, caller.args)
	})

	t.Run("Transport failure is unknown", func(t *testing.T) {
		caller := &stubCaller{err: errors.New("i/o timeout")}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Earn(ctx, 10, "ad_reward")

		assert.Equal(t, platform.OutcomeUnknown, res.Outcome)
		assert.Equal(t, 1, caller.calls)
	})
}

func TestUnlockProcedure(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh unlock", func(t *testing.T) {
		caller := &stubCaller{raw: `{"success":true,"credits_remaining":50}`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Unlock(ctx, "prompt-1", 50)

		assert.Equal(t, platform.OutcomeOK, res.Outcome)
		assert.False(t, res.AlreadyOwned)
		assert.Equal(t, 50, res.CreditsRemaining)
		assert.Equal(t, unlockProcedure, caller.query)
		assert.Equal(t, []any{"prompt-1", 50}, caller.args)
	})

	t.Run("Server short-circuit reports already owned", func(t *testing.T) {
		caller := &stubCaller{raw: `{"success":true,"already_owned":true,"credits_remaining":100}`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Unlock(ctx, "prompt-1", 50)

		assert.Equal(t, platform.OutcomeOK, res.Outcome)
		assert.True(t, res.AlreadyOwned)
		assert.Equal(t, 100, res.CreditsRemaining)
	})

	t.Run("Insufficient funds coalesces counter synonyms", func(t *testing.T) {
		caller := &stubCaller{raw: `{"success":false,"error":"insufficient_funds","required":50,"available":20}`}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Unlock(ctx, "prompt-1", 50)

		assert.Equal(t, platform.OutcomeInsufficientFunds, res.Outcome)
		assert.Equal(t, 50, res.Required)
		assert.Equal(t, 20, res.Available)
	})

	t.Run("Transport failure is unknown", func(t *testing.T) {
		caller := &stubCaller{err: errors.New("connection refused")}
		gateway := newWithCaller(caller, quietLogger(t))

		res := gateway.Unlock(ctx, "prompt-1", 50)

		assert.Equal(t, platform.OutcomeUnknown, res.Outcome)
		assert.Equal(t, 1, caller.calls)
	})
}
