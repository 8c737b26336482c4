package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	domainerr "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	adminUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/admin"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/dto"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 32 << 20

// AdminHandler handles the admin upload HTTP requests
type AdminHandler struct {
	adminService *adminUseCase.Service
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminService *adminUseCase.Service, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// UploadPrompt handles the POST /admin/prompts endpoint. The payload is a
// multipart form: prompt fields plus an optional media file.
func (h *AdminHandler) UploadPrompt(c *gin.Context) {
	store, ok := middleware.StoreFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Authentication required",
		})
		return
	}
	_, profile := store.Snapshot()

	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid multipart form: " + err.Error(),
		})
		return
	}

	cost, err := strconv.Atoi(c.PostForm("cost"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCost),
			Message: "Cost must be a positive integer",
		})
		return
	}

	input := adminUseCase.UploadInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Model:       c.PostForm("model"),
		Category:    c.PostForm("category"),
		MediaType:   entity.MediaType(c.PostForm("media_type")),
		Cost:        cost,
		PromptText:  c.PostForm("prompt_text"),
		Author:      c.PostForm("author"),
		Featured:    c.PostForm("featured") == "true",
	}

	if file, header, err := c.Request.FormFile("media"); err == nil {
		defer file.Close()
		input.Media = file
		input.MediaFilename = header.Filename
		input.MediaContentType = header.Header.Get("Content-Type")
	}

	prompt, err := h.adminService.Upload(c.Request.Context(), profile, input)
	if err != nil {
		if errors.Is(err, domainerr.ErrForbidden) {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Admin role required",
			})
			return
		}
		status := http.StatusInternalServerError
		message := "Upload failed"
		if code := domainerr.ErrorCode(err); code >= 4000 && code < 5000 {
			status = http.StatusBadRequest
			message = "Invalid prompt: " + err.Error()
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.FromPrompt(prompt))
}
