package handler

import (
	"net/http"
	"strconv"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	domainerr "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	catalogUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/catalog"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/dto"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles catalog browsing HTTP requests
type CatalogHandler struct {
	catalogService *catalogUseCase.Service
	logger         coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalogService *catalogUseCase.Service, logger coreport.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListPrompts handles the GET /prompts endpoint
func (h *CatalogHandler) ListPrompts(c *gin.Context) {
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

	filter := platform.PromptFilter{
		Model:       c.Query("model"),
		MediaType:   c.Query("media_type"),
		Category:    c.Query("category"),
		TitlePrefix: c.Query("title"),
		Limit:       limit,
	}

	prompts, err := h.catalogService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to load prompts",
		})
		return
	}

	responses := make([]dto.PromptResponse, len(prompts))
	for i, p := range prompts {
		responses[i] = dto.FromPrompt(p)
	}
	c.JSON(http.StatusOK, dto.ListPromptsResponse{Prompts: responses, Count: len(responses)})
}

// GetPrompt handles the GET /prompts/:promptId endpoint
func (h *CatalogHandler) GetPrompt(c *gin.Context) {
	promptID := c.Param("promptId")

	userID := ""
	if sess, ok := middleware.SessionFrom(c); ok {
		userID = sess.UserID
	}

	view, err := h.catalogService.Detail(c.Request.Context(), promptID, userID)
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

	c.JSON(http.StatusOK, dto.PromptDetailResponse{
		Prompt: dto.FromPrompt(view.Prompt),
		Owned:  view.Owned,
	})
}

// ListPlans handles the GET /plans endpoint
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	plans := entity.PricingPlans()
	responses := make([]dto.PlanResponse, len(plans))
	for i, p := range plans {
		responses[i] = dto.FromPlan(p)
	}
	c.JSON(http.StatusOK, gin.H{"plans": responses})
}
