package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	accountUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/account"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/dto"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile and settings HTTP requests
type ProfileHandler struct {
	accountService *accountUseCase.Service
	logger         coreport.Logger
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(accountService *accountUseCase.Service, logger coreport.Logger) *ProfileHandler {
	return &ProfileHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// GetProfile handles the GET /profile endpoint. It serves the cached
// snapshot; every surface reads the same number.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	store, ok := middleware.StoreFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Authentication required",
		})
		return
	}

	_, profile := store.Snapshot()
	if profile == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrProfileNotFound),
			Message: "Profile not found",
		})
		return
	}
	c.JSON(http.StatusOK, dto.FromProfile(profile))
}

// UpdateUsername handles the PATCH /profile/username endpoint
func (h *ProfileHandler) UpdateUsername(c *gin.Context) {
	store, ok := middleware.StoreFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Authentication required",
		})
		return
	}

	var req dto.UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := h.accountService.UpdateUsername(c.Request.Context(), store, req.Username); err != nil {
		status := http.StatusInternalServerError
		message := "Failed to update username"
		switch {
		case domainerr.IsUnauthorizedError(err):
			status = http.StatusUnauthorized
			message = "Authentication required"
		case domainerr.IsNotFoundError(err):
			status = http.StatusNotFound
			message = "Profile not found"
		case domainerr.ErrorCode(err) == domainerr.CodeInvalidRequest:
			status = http.StatusBadRequest
			message = "Username cannot be empty"
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	_, profile := store.Snapshot()
	c.JSON(http.StatusOK, dto.FromProfile(profile))
}

// GetHistory handles the GET /profile/history endpoint
func (h *ProfileHandler) GetHistory(c *gin.Context) {
	store, ok := middleware.StoreFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Authentication required",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	entries, err := h.accountService.History(c.Request.Context(), store, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to load history",
		})
		return
	}

	responses := make([]dto.TransactionResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.FromTransaction(entry)
	}
	c.JSON(http.StatusOK, gin.H{"transactions": responses, "count": len(responses)})
}
