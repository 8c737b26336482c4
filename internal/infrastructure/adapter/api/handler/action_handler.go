package handler

import (
	"net/http"
	"sync"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	domainerr "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	"github.com/prompter-labs/prompter/internal/domain/usecase/action"
	"github.com/prompter-labs/prompter/internal/domain/usecase/session"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/dto"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/middleware"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/clipboard"
	"github.com/gin-gonic/gin"
)

// LedgerBinder mints a gateway bound to one user's identity, so the ledger
// procedures run under that user's claims
type LedgerBinder interface {
	ForUser(userID string) platform.LedgerGateway
}

// ActionHandler handles copy and unlock HTTP requests. Each user gets one
// coordinator and one clipboard buffer; the buffer carries the copied prompt
// text back in the response body so the browser can place it on the user's
// own clipboard.
type ActionHandler struct {
	prompts      platform.PromptRepository
	purchases    platform.PurchaseRepository
	ledger       LedgerBinder
	coordinators *action.Registry
	logger       coreport.Logger

	mu      sync.Mutex
	buffers map[string]*clipboard.Buffer
}

// NewActionHandler creates a new action handler instance
func NewActionHandler(
	prompts platform.PromptRepository,
	purchases platform.PurchaseRepository,
	ledger LedgerBinder,
	coordinators *action.Registry,
	logger coreport.Logger,
) *ActionHandler {
	return &ActionHandler{
		prompts:      prompts,
		purchases:    purchases,
		ledger:       ledger,
		coordinators: coordinators,
		logger:       logger,
		buffers:      make(map[string]*clipboard.Buffer),
	}
}

// CopyPrompt handles the POST /prompts/:promptId/copy endpoint
func (h *ActionHandler) CopyPrompt(c *gin.Context) {
	h.runAction(c, func(coordinator *action.Coordinator, prompt *entity.Prompt, returnPath string) action.Result {
		return coordinator.Copy(c.Request.Context(), prompt, returnPath)
	}, true)
}

// UnlockPrompt handles the POST /prompts/:promptId/unlock endpoint
func (h *ActionHandler) UnlockPrompt(c *gin.Context) {
	h.runAction(c, func(coordinator *action.Coordinator, prompt *entity.Prompt, returnPath string) action.Result {
		return coordinator.Unlock(c.Request.Context(), prompt, returnPath)
	}, false)
}

func (h *ActionHandler) runAction(
	c *gin.Context,
	invoke func(*action.Coordinator, *entity.Prompt, string) action.Result,
	includeText bool,
) {
	sess, okSess := middleware.SessionFrom(c)
	store, okStore := middleware.StoreFrom(c)
	if !okSess || !okStore {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Authentication required",
		})
		return
	}

	promptID := c.Param("promptId")
	prompt, err := h.prompts.GetByID(c.Request.Context(), promptID)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to load prompt"
		if domainerr.IsNotFoundError(err) {
			status = http.StatusNotFound
			message = "Prompt not found"
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	var req dto.ActionRequest
	_ = c.ShouldBindJSON(&req)

	coordinator, buffer := h.surfaceFor(sess.UserID, store)
	result := invoke(coordinator, prompt, req.ReturnPath)

	resp := dto.ActionResponse{
		Status:           result.Status.String(),
		Message:          result.Message,
		CreditsRemaining: result.CreditsRemaining,
		Required:         result.Required,
		Available:        result.Available,
		OfferReward:      result.OfferReward,
		SignInRedirect:   result.SignInRedirect,
	}
	if includeText && result.Status == action.StatusOK {
		if text, ok := buffer.Take(); ok {
			resp.PromptText = text
		}
	}

	c.JSON(statusToHTTP(result.Status), resp)
}

// surfaceFor returns the user's coordinator and buffer, building both on
// first use
func (h *ActionHandler) surfaceFor(userID string, store *session.Store) (*action.Coordinator, *clipboard.Buffer) {
	h.mu.Lock()
	buffer, ok := h.buffers[userID]
	if !ok {
		buffer = clipboard.NewBuffer()
		h.buffers[userID] = buffer
	}
	h.mu.Unlock()

	coordinator := h.coordinators.For(userID, func() *action.Coordinator {
		return action.NewCoordinator(h.ledger.ForUser(userID), h.purchases, store, buffer, h.logger)
	})
	return coordinator, buffer
}

// Drop discards a user's buffer on sign-out
func (h *ActionHandler) Drop(userID string) {
	h.mu.Lock()
	delete(h.buffers, userID)
	h.mu.Unlock()
}

func statusToHTTP(status action.Status) int {
	switch status {
	case action.StatusOK, action.StatusAlreadyOwned:
		return http.StatusOK
	case action.StatusUnauthorized:
		return http.StatusUnauthorized
	case action.StatusInsufficientFunds:
		return http.StatusPaymentRequired
	case action.StatusBusy:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
