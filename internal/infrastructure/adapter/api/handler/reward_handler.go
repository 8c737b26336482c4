package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/usecase/reward"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/dto"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// RewardHandler handles the watch-and-earn HTTP requests
type RewardHandler struct {
	flows        *reward.Registry
	pool         []reward.AdItem
	ledger       LedgerBinder
	timeProvider coreport.TimeProvider
	cfg          reward.Config
	logger       coreport.Logger
}

// NewRewardHandler creates a new reward handler instance
func NewRewardHandler(
	flows *reward.Registry,
	pool []reward.AdItem,
	ledger LedgerBinder,
	timeProvider coreport.TimeProvider,
	cfg reward.Config,
	logger coreport.Logger,
) *RewardHandler {
	return &RewardHandler{
		flows:        flows,
		pool:         pool,
		ledger:       ledger,
		timeProvider: timeProvider,
		cfg:          cfg,
		logger:       logger,
	}
}

// GetState handles the GET /reward endpoint
func (h *RewardHandler) GetState(c *gin.Context) {
	flow, ok := h.flowFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stateResponse(flow))
}

// StartWatch handles the POST /reward/watch endpoint
func (h *RewardHandler) StartWatch(c *gin.Context) {
	flow, ok := h.flowFor(c)
	if !ok {
		return
	}

	if ad := flow.Start(); ad == nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "No ads available right now",
		})
		return
	}
	c.JSON(http.StatusOK, stateResponse(flow))
}

// Claim handles the POST /reward/claim endpoint
func (h *RewardHandler) Claim(c *gin.Context) {
	flow, ok := h.flowFor(c)
	if !ok {
		return
	}

	total, err := flow.Claim(c.Request.Context())
	if err != nil {
		status := http.StatusBadGateway
		message := "Claim failed, please try again"
		switch {
		case errors.Is(err, domainerr.ErrClaimNotReady):
			status = http.StatusConflict
			message = "Finish watching the ad first"
		case errors.Is(err, domainerr.ErrAlreadyClaimed):
			status = http.StatusConflict
			message = "Reward already claimed for this session"
		case errors.Is(err, domainerr.ErrActionInFlight):
			status = http.StatusTooManyRequests
			message = "A claim is already in progress"
		case domainerr.IsUnauthorizedError(err):
			status = http.StatusUnauthorized
			message = "Session is no longer valid"
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ClaimResponse{
		Claimed:      h.cfg.ClaimAmount,
		CreditsTotal: total,
	})
}

// Close handles the POST /reward/close endpoint
func (h *RewardHandler) Close(c *gin.Context) {
	flow, ok := h.flowFor(c)
	if !ok {
		return
	}
	flow.Close()
	c.Status(http.StatusNoContent)
}

// flowFor returns the signed-in user's flow, building it on first use
func (h *RewardHandler) flowFor(c *gin.Context) (*reward.Flow, bool) {
	sess, okSess := middleware.SessionFrom(c)
	store, okStore := middleware.StoreFrom(c)
	if !okSess || !okStore {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Authentication required",
		})
		return nil, false
	}

	flow := h.flows.For(sess.UserID, func() *reward.Flow {
		return reward.NewFlow(h.pool, h.ledger.ForUser(sess.UserID), store, h.timeProvider, h.logger, h.cfg)
	})
	return flow, true
}

func stateResponse(flow *reward.Flow) dto.RewardStateResponse {
	resp := dto.RewardStateResponse{
		State:     flow.State().String(),
		Remaining: flow.Remaining(),
	}
	if ad := flow.Current(); ad != nil {
		resp.Ad = &dto.AdResponse{
			ID:       ad.ID,
			Title:    ad.Title,
			MediaURL: ad.MediaURL,
		}
	}
	return resp
}
