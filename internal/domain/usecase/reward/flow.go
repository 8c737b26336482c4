package reward

import (
	"context"
	"math/rand"
	"sync"
	"time"

	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	"github.com/prompter-labs/prompter/internal/domain/usecase/session"
)

// State is the position of the watch-and-earn flow
type State int

const (
	// StateMenu is the resting state; no ad selected, nothing claimable
	StateMenu State = iota
	// StateWatching counts the ad down; reaching zero is the only way out
	StateWatching
	// StateClaimable means the countdown finished and one claim may be issued
	StateClaimable
	// StateClaimed means the reward was credited for this watch session
	StateClaimed
)

// String returns the display name of the state
func (s State) String() string {
	switch s {
	case StateWatching:
		return "watching"
	case StateClaimable:
		return "claimable"
	case StateClaimed:
		return "claimed"
	default:
		return "menu"
	}
}

// AdItem is one entry of the fixed ad pool
type AdItem struct {
	ID       string
	Title    string
	MediaURL string
}

// RewardReason tags ad-reward ledger entries
const RewardReason = "ad_reward"

// Config tunes the flow. Zero values fall back to the product defaults:
// an 8 second watch, 1 second ticks, a 10 credit claim.
type Config struct {
	WatchDuration  time.Duration
	TickInterval   time.Duration
	ClaimAmount    int
	AutoCloseDelay time.Duration
	// Pick selects an index in [0, n); defaults to a uniform random pick
	Pick func(n int) int
}

func (c *Config) applyDefaults() {
	if c.WatchDuration <= 0 {
		c.WatchDuration = 8 * time.Second
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	if c.ClaimAmount <= 0 {
		c.ClaimAmount = 10
	}
	if c.AutoCloseDelay <= 0 {
		c.AutoCloseDelay = 2 * time.Second
	}
	if c.Pick == nil {
		c.Pick = rand.Intn
	}
}

// Flow is the watch-an-ad-then-claim state machine. One instance serves one
// session; all transitions are serialized through the mutex. Re-entering
// Watching always resets the countdown and the claim flags, so at most one
// claim can be issued per watch session.
type Flow struct {
	mu         sync.Mutex
	state      State
	remaining  int
	claimed    bool
	claiming   bool
	current    *AdItem
	generation int
	stop       chan struct{}

	pool   []AdItem
	cfg    Config
	ledger platform.LedgerGateway
	store  *session.Store
	tp     coreport.TimeProvider
	logger coreport.Logger
}

// NewFlow creates a flow in the Menu state
func NewFlow(
	pool []AdItem,
	ledger platform.LedgerGateway,
	store *session.Store,
	tp coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Flow {
	cfg.applyDefaults()
	return &Flow{
		state:  StateMenu,
		pool:   pool,
		cfg:    cfg,
		ledger: ledger,
		store:  store,
		tp:     tp,
		logger: logger,
	}
}

// Start moves to Watching: picks an ad uniformly at random, resets the
// countdown and the claim flags, and starts the ticker. Calling Start while
// already watching abandons the previous countdown entirely.
func (f *Flow) Start() *AdItem {
	f.mu.Lock()
	if len(f.pool) == 0 {
		f.mu.Unlock()
		return nil
	}
	f.cancelTickerLocked()

	ad := f.pool[f.cfg.Pick(len(f.pool))]
	f.current = &ad
	f.state = StateWatching
	f.remaining = int(f.cfg.WatchDuration / f.cfg.TickInterval)
	f.claimed = false
	f.claiming = false
	f.generation++

	stop := make(chan struct{})
	f.stop = stop
	f.mu.Unlock()

	go f.tickLoop(stop)

	f.logger.Debug("Watch session started", map[string]any{
		"ad_id":     ad.ID,
		"countdown": f.Remaining(),
	})
	return &ad
}

// tickLoop drives the countdown in real time. It exits as soon as the state
// leaves Watching so a stale ticker can never touch a later session.
func (f *Flow) tickLoop(stop chan struct{}) {
	ticker := time.NewTicker(f.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if done := f.Tick(); done {
				return
			}
		}
	}
}

// Tick advances the countdown by one interval and reports whether the
// countdown is over. The counter strictly decreases and never goes negative;
// ticks outside Watching are ignored.
func (f *Flow) Tick() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateWatching {
		return true
	}
	f.remaining--
	if f.remaining <= 0 {
		f.remaining = 0
		f.state = StateClaimable
		return true
	}
	return false
}

// Claim issues the earn call for the finished watch session. Exactly one
// claim can succeed per session: the claimed flag is checked before dispatch
// and a claim already on the wire blocks further ones. On failure the flow
// stays Claimable so the user can retry.
func (f *Flow) Claim(ctx context.Context) (int, error) {
	f.mu.Lock()
	switch {
	case f.state == StateClaimed || f.claimed:
		f.mu.Unlock()
		return 0, errs.ErrAlreadyClaimed
	case f.state != StateClaimable:
		f.mu.Unlock()
		return 0, errs.ErrClaimNotReady
	case f.claiming:
		f.mu.Unlock()
		return 0, errs.ErrActionInFlight
	}
	f.claiming = true
	gen := f.generation
	f.mu.Unlock()

	res := f.ledger.Earn(ctx, f.cfg.ClaimAmount, RewardReason)

	f.mu.Lock()
	f.claiming = false
	if res.Outcome != platform.OutcomeOK {
		f.mu.Unlock()
		f.logger.Warn("Reward claim failed", map[string]any{
			"outcome": res.Outcome.String(),
			"message": res.Message,
		})
		if res.Outcome == platform.OutcomeUnauthorized {
			return 0, errs.ErrUnauthorized
		}
		return 0, errs.NewLedgerError("earn", "", res.Message, errs.ErrLedgerUnknown)
	}
	f.claimed = true
	f.state = StateClaimed
	f.mu.Unlock()

	if err := f.store.Refresh(ctx); err != nil {
		f.logger.Warn("Balance refresh after claim failed", map[string]any{
			"error": err.Error(),
		})
	}

	f.logger.Info("Reward claimed", map[string]any{
		"amount":        f.cfg.ClaimAmount,
		"credits_total": res.CreditsTotal,
	})

	// Auto-close shortly after a successful claim. The generation check
	// keeps a slow close from clobbering a session started in the meantime.
	go func() {
		f.tp.Sleep(f.cfg.AutoCloseDelay)
		f.closeGeneration(gen)
	}()

	return res.CreditsTotal, nil
}

// Close resets the flow to Menu and cancels any running countdown
func (f *Flow) Close() {
	f.mu.Lock()
	f.resetLocked()
	f.mu.Unlock()
}

func (f *Flow) closeGeneration(gen int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generation != gen {
		return
	}
	f.resetLocked()
}

func (f *Flow) resetLocked() {
	f.cancelTickerLocked()
	f.state = StateMenu
	f.current = nil
	f.remaining = 0
	f.claimed = false
	f.claiming = false
}

func (f *Flow) cancelTickerLocked() {
	if f.stop != nil {
		close(f.stop)
		f.stop = nil
	}
}

// State returns the current flow state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Remaining returns the seconds left on the countdown
func (f *Flow) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.remaining
}

// Current returns the ad selected for this watch session, if any
func (f *Flow) Current() *AdItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}
