package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	accountUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/account"
	actionUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/action"
	catalogUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/catalog"
	rewardUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/reward"
	sessionUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/session"
)

// LedgerBinder mints a gateway bound to one user's identity
type LedgerBinder interface {
	ForUser(userID string) platform.LedgerGateway
}

// Deps bundles everything the terminal client needs
type Deps struct {
	Identity     platform.IdentityProvider
	Prompts      platform.PromptRepository
	Purchases    platform.PurchaseRepository
	Profiles     platform.ProfileRepository
	Transactions platform.TransactionRepository
	Ledger       LedgerBinder
	Clipboard    coreport.Clipboard
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
	RewardConfig rewardUseCase.Config
	AdPool       []rewardUseCase.AdItem
}

// App is the interactive terminal client. It holds one session store, one
// action coordinator and one reward flow; all three are rebuilt on sign-in.
type App struct {
	deps    Deps
	store   *sessionUseCase.Store
	catalog *catalogUseCase.Service
	account *accountUseCase.Service

	coordinator *actionUseCase.Coordinator
	flow        *rewardUseCase.Flow

	in  io.Reader
	out io.Writer
}

// NewApp creates the terminal client
func NewApp(deps Deps) *App {
	return &App{
		deps:    deps,
		store:   sessionUseCase.NewStore(deps.Profiles, deps.Logger),
		catalog: catalogUseCase.NewService(deps.Prompts, deps.Purchases, deps.Logger),
		account: accountUseCase.NewService(deps.Profiles, deps.Transactions, deps.Logger),
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// Run starts the read-eval loop. It tries to restore a saved session first so
// the user doesn't have to sign in on every launch.
func (a *App) Run(ctx context.Context) error {
	a.printf("PromptER terminal client. Type 'help' for commands.\n")
	a.restoreSession(ctx)

	scanner := bufio.NewScanner(a.in)
	for {
		a.printPrompt()
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		command, args := fields[0], fields[1:]
		if command == "quit" || command == "exit" {
			break
		}
		a.dispatch(ctx, command, args)
	}
	return scanner.Err()
}

func (a *App) dispatch(ctx context.Context, command string, args []string) {
	switch command {
	case "help":
		a.printHelp()
	case "signup":
		a.signUp(ctx, args)
	case "login":
		a.signIn(ctx, args)
	case "logout":
		a.signOut(ctx)
	case "list":
		a.list(ctx, args)
	case "show":
		a.show(ctx, args)
	case "copy":
		a.copy(ctx, args)
	case "unlock":
		a.unlock(ctx, args)
	case "watch":
		a.watch()
	case "claim":
		a.claim(ctx)
	case "balance":
		a.balance(ctx)
	case "history":
		a.history(ctx, args)
	case "plans":
		a.plans()
	case "setname":
		a.setName(ctx, args)
	default:
		a.printf("Unknown command %q. Type 'help' for the list.\n", command)
	}
}

func (a *App) printHelp() {
	a.printf(`Commands:
  signup <email>        register a new account
  login <email>         sign in
  logout                sign out
  list [key=value ...]  browse prompts (model=, category=, type=, title=, limit=)
  show <id>             prompt details
  copy <id>             pay and copy the prompt text to the clipboard
  unlock <id>           permanently unlock a prompt
  watch                 watch an ad to earn credits
  claim                 claim the reward after watching
  balance               show your credit balance
  history [n]           recent ledger entries
  plans                 credit bundles
  setname <username>    change your display name
  quit                  exit
`)
}

func (a *App) restoreSession(ctx context.Context) {
	token := loadToken()
	if token == "" {
		return
	}
	sess, err := a.deps.Identity.CurrentSession(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrSessionExpired) {
			a.printf("Saved session expired, please log in again.\n")
		}
		clearToken()
		return
	}
	if err := a.establish(ctx, sess); err != nil {
		clearToken()
		return
	}
	a.printf("Welcome back, %s.\n", sess.Email)
}

func (a *App) signUp(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("Usage: signup <email>\n")
		return
	}
	password, err := a.readPassword("Password: ")
	if err != nil {
		a.printf("Could not read password: %v\n", err)
		return
	}

	sess, err := a.deps.Identity.SignUp(ctx, args[0], password)
	if err != nil {
		a.printf("Sign up failed: %v\n", err)
		return
	}
	if sess == nil {
		a.printf("Almost there. Check your inbox and verify your email, then log in.\n")
		return
	}
	if err := a.establish(ctx, sess); err != nil {
		a.printf("Signed up but could not load your profile: %v\n", err)
		return
	}
	a.printf("Account created. You have %d credits.\n", a.store.Credits())
}

func (a *App) signIn(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("Usage: login <email>\n")
		return
	}
	password, err := a.readPassword("Password: ")
	if err != nil {
		a.printf("Could not read password: %v\n", err)
		return
	}

	sess, err := a.deps.Identity.SignIn(ctx, args[0], password)
	if err != nil {
		if errors.Is(err, errs.ErrEmailNotConfirmed) {
			a.printf("Please verify your email before signing in.\n")
			return
		}
		a.printf("Sign in failed: %v\n", err)
		return
	}
	if err := a.establish(ctx, sess); err != nil {
		a.printf("Signed in but could not load your profile: %v\n", err)
		return
	}
	a.printf("Signed in as %s. Balance: %d credits.\n", sess.Email, a.store.Credits())
}

// establish wires the session store, the coordinator and the reward flow to
// the signed-in user
func (a *App) establish(ctx context.Context, sess *platform.Session) error {
	if err := a.store.Establish(ctx, sess); err != nil {
		return err
	}

	gateway := a.deps.Ledger.ForUser(sess.UserID)
	a.coordinator = actionUseCase.NewCoordinator(gateway, a.deps.Purchases, a.store, a.deps.Clipboard, a.deps.Logger)
	a.flow = rewardUseCase.NewFlow(a.deps.AdPool, gateway, a.store, a.deps.TimeProvider, a.deps.Logger, a.deps.RewardConfig)

	if err := saveToken(sess.AccessToken); err != nil {
		a.deps.Logger.Warn("Could not persist session token", map[string]any{
			"error": err.Error(),
		})
	}
	return nil
}

func (a *App) signOut(ctx context.Context) {
	sess, _ := a.store.Snapshot()
	if sess == nil {
		a.printf("Not signed in.\n")
		return
	}
	if err := a.deps.Identity.SignOut(ctx, sess.AccessToken); err != nil {
		a.printf("Remote sign-out failed (%v), clearing local session anyway.\n", err)
	}
	if a.flow != nil {
		a.flow.Close()
	}
	a.store.Clear()
	a.coordinator = nil
	a.flow = nil
	clearToken()
	a.printf("Signed out.\n")
}

func (a *App) list(ctx context.Context, args []string) {
	filter := platform.PromptFilter{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			a.printf("Filters look like key=value, e.g. model=midjourney\n")
			return
		}
		switch key {
		case "model":
			filter.Model = value
		case "category":
			filter.Category = value
		case "type":
			filter.MediaType = value
		case "title":
			filter.TitlePrefix = value
		case "limit":
			n, err := strconv.Atoi(value)
			if err != nil {
				a.printf("limit must be a number\n")
				return
			}
			filter.Limit = n
		default:
			a.printf("Unknown filter %q\n", key)
			return
		}
	}

	prompts, err := a.catalog.List(ctx, filter)
	if err != nil {
		a.printf("Could not load prompts: %v\n", err)
		return
	}
	if len(prompts) == 0 {
		a.printf("No prompts match.\n")
		return
	}
	for _, p := range prompts {
		a.printf("  %s  %-40q %s / %s  %d credits\n",
			p.ID, p.Title, entity.DisplayName(p.Model), entity.DisplayName(p.Category), p.Cost)
	}
}

func (a *App) show(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("Usage: show <id>\n")
		return
	}
	userID := ""
	if sess, _ := a.store.Snapshot(); sess != nil {
		userID = sess.UserID
	}

	view, err := a.catalog.Detail(ctx, args[0], userID)
	if err != nil {
		a.printf("Could not load prompt: %v\n", err)
		return
	}

	p := view.Prompt
	a.printf("%s\n", p.Title)
	if p.Description != "" {
		a.printf("  %s\n", p.Description)
	}
	a.printf("  Model: %s  Category: %s  Cost: %d credits  Rating: %.1f\n",
		entity.DisplayName(p.Model), entity.DisplayName(p.Category), p.Cost, p.Rating)
	if view.Owned {
		a.printf("  Unlocked. Prompt text:\n  %s\n", p.PromptText)
	} else {
		a.printf("  Locked. Use 'copy %s' or 'unlock %s' to get the text.\n", p.ID, p.ID)
	}
}

func (a *App) copy(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("Usage: copy <id>\n")
		return
	}
	if a.coordinator == nil {
		a.printf("Please log in first.\n")
		return
	}

	prompt, err := a.deps.Prompts.GetByID(ctx, args[0])
	if err != nil {
		a.printf("Could not load prompt: %v\n", err)
		return
	}

	a.report(a.coordinator.Copy(ctx, prompt, ""))
}

func (a *App) unlock(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("Usage: unlock <id>\n")
		return
	}
	if a.coordinator == nil {
		a.printf("Please log in first.\n")
		return
	}

	prompt, err := a.deps.Prompts.GetByID(ctx, args[0])
	if err != nil {
		a.printf("Could not load prompt: %v\n", err)
		return
	}

	a.report(a.coordinator.Unlock(ctx, prompt, ""))
}

func (a *App) report(result actionUseCase.Result) {
	switch result.Status {
	case actionUseCase.StatusOK:
		a.printf("%s. Balance: %d credits.\n", result.Message, result.CreditsRemaining)
	case actionUseCase.StatusAlreadyOwned:
		a.printf("%s.\n", result.Message)
	case actionUseCase.StatusInsufficientFunds:
		a.printf("Not enough credits: need %d, have %d. Try 'watch' to earn more.\n",
			result.Required, result.Available)
	case actionUseCase.StatusUnauthorized:
		a.printf("%s\n", result.Message)
	case actionUseCase.StatusBusy:
		a.printf("Hold on, the previous action is still running.\n")
	default:
		a.printf("%s\n", result.Message)
	}
}

// watch runs the ad countdown inline, redrawing the remaining seconds on one
// line until the reward becomes claimable
func (a *App) watch() {
	if a.flow == nil {
		a.printf("Please log in first.\n")
		return
	}

	ad := a.flow.Start()
	if ad == nil {
		a.printf("No ads available right now.\n")
		return
	}
	a.printf("Now playing: %s\n", ad.Title)

	for a.flow.State() == rewardUseCase.StateWatching {
		a.printf("\r  %2d seconds remaining...", a.flow.Remaining())
		a.deps.TimeProvider.Sleep(250 * time.Millisecond)
	}
	a.printf("\rDone. Type 'claim' to collect your credits.\n")
}

func (a *App) claim(ctx context.Context) {
	if a.flow == nil {
		a.printf("Please log in first.\n")
		return
	}

	total, err := a.flow.Claim(ctx)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrClaimNotReady):
			a.printf("Finish watching the ad first.\n")
		case errors.Is(err, errs.ErrAlreadyClaimed):
			a.printf("Already claimed for this session. Run 'watch' again to earn more.\n")
		case errors.Is(err, errs.ErrActionInFlight):
			a.printf("A claim is already in progress.\n")
		default:
			a.printf("Claim failed: %v\n", err)
		}
		return
	}
	a.printf("+%d credits. New balance: %d.\n", a.deps.RewardConfig.ClaimAmount, total)
}

func (a *App) balance(ctx context.Context) {
	if !a.store.SignedIn() {
		a.printf("Not signed in.\n")
		return
	}
	if err := a.store.Refresh(ctx); err != nil {
		a.printf("Could not refresh, showing cached balance.\n")
	}
	a.printf("Balance: %d credits.\n", a.store.Credits())
}

func (a *App) history(ctx context.Context, args []string) {
	limit := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			a.printf("Usage: history [n]\n")
			return
		}
		limit = n
	}

	entries, err := a.account.History(ctx, a.store, limit)
	if err != nil {
		if errs.IsUnauthorizedError(err) {
			a.printf("Please log in first.\n")
			return
		}
		a.printf("Could not load history: %v\n", err)
		return
	}
	if len(entries) == 0 {
		a.printf("No transactions yet.\n")
		return
	}
	for _, t := range entries {
		a.printf("  %s  %+5d  %-10s %s\n",
			t.CreatedAt.Format("2006-01-02 15:04"), t.Amount, t.Kind, t.Description)
	}
}

func (a *App) plans() {
	a.printf("Credit bundles:\n")
	for _, plan := range entity.PricingPlans() {
		marker := " "
		if plan.Popular {
			marker = "*"
		}
		a.printf("  %s %-8s %4d credits  $%.2f\n", marker, plan.Name, plan.Credits, plan.PriceUSD)
	}
	a.printf("Purchasing opens in the web app.\n")
}

func (a *App) setName(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("Usage: setname <username>\n")
		return
	}
	if err := a.account.UpdateUsername(ctx, a.store, args[0]); err != nil {
		if errs.IsUnauthorizedError(err) {
			a.printf("Please log in first.\n")
			return
		}
		a.printf("Could not update username: %v\n", err)
		return
	}
	a.printf("Display name updated.\n")
}

func (a *App) printPrompt() {
	if a.store.SignedIn() {
		a.printf("prompter(%d)> ", a.store.Credits())
		return
	}
	a.printf("prompter> ")
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// readPassword reads a password without echoing it back to the terminal
func (a *App) readPassword(prompt string) (string, error) {
	a.printf("%s", prompt)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	a.printf("\n")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
