package dto

import (
	"time"

	"github.com/prompter-labs/prompter/internal/domain/entity"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/storage"
)

// PromptResponse is one catalog entry as rendered to clients. PromptText is
// only populated for owned detail views; listings never carry it.
type PromptResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	PromptText      string    `json:"prompt_text,omitempty"`
	Locked          bool      `json:"locked"`
	MediaType       string    `json:"media_type"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	ImageURL        string    `json:"image_url"`
	Cost            int       `json:"cost"`
	Category        string    `json:"category,omitempty"`
	CategoryDisplay string    `json:"category_display,omitempty"`
	Model           string    `json:"model,omitempty"`
	ModelDisplay    string    `json:"model_display,omitempty"`
	Author          string    `json:"author,omitempty"`
	Sales           int       `json:"sales"`
	Rating          float64   `json:"rating"`
	Variables       []string  `json:"variables,omitempty"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"created_at"`
}

// FromPrompt maps a domain prompt into its API shape
func FromPrompt(p *entity.Prompt) PromptResponse {
	return PromptResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		PromptText:      p.PromptText,
		Locked:          p.Locked(),
		MediaType:       string(p.MediaType),
		ThumbnailURL:    storage.CardThumbnail(p.MediaURL),
		ImageURL:        storage.DetailImage(p.MediaURL),
		Cost:            p.Cost,
		Category:        p.Category,
		CategoryDisplay: entity.DisplayName(p.Category),
		Model:           p.Model,
		ModelDisplay:    entity.DisplayName(p.Model),
		Author:          p.Author,
		Sales:           p.Sales,
		Rating:          p.Rating,
		Variables:       p.Variables,
		Featured:        p.Featured,
		CreatedAt:       p.CreatedAt,
	}
}

// ListPromptsResponse wraps a catalog page
type ListPromptsResponse struct {
	Prompts []PromptResponse `json:"prompts"`
	Count   int              `json:"count"`
}

// PromptDetailResponse is the prompt detail view plus the viewer's ownership
type PromptDetailResponse struct {
	Prompt PromptResponse `json:"prompt"`
	Owned  bool           `json:"owned"`
}
