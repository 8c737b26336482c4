package entity

import (
	"strings"
	"time"

	errs "github.com/prompter-labs/prompter/internal/domain/error"
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
)

// MediaType classifies the preview asset attached to a prompt
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaText  MediaType = "text"
)

// Valid reports whether the media type is one of the allowed values
func (m MediaType) Valid() bool {
	switch m {
	case MediaImage, MediaVideo, MediaText:
		return true
	}
	return false
}

// Prompt is a catalog entry. The prompt text is the sellable secret: it must
// not leave the server for a viewer who has not paid, so every read path that
// serves a locked view goes through Redacted first. The lock is a display
// gate only; the ledger procedures remain the authoritative paywall.
type Prompt struct {
	ID          string
	Title       string
	Description string
	PromptText  string
	MediaURL    string
	MediaType   MediaType
	Cost        int
	Category    string
	Model       string
	Author      string
	Sales       int
	Rating      float64
	Variables   []string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPrompt creates a validated catalog entry
func NewPrompt(id, title, promptText string, cost int, mediaType MediaType, timeProvider coreport.TimeProvider) (*Prompt, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidPromptID
	}
	if strings.TrimSpace(title) == "" {
		return nil, errs.ErrEmptyTitle
	}
	if strings.TrimSpace(promptText) == "" {
		return nil, errs.ErrEmptyPromptText
	}
	if cost <= 0 {
		return nil, errs.ErrInvalidCost
	}
	if !mediaType.Valid() {
		return nil, errs.ErrInvalidMediaType
	}

	now := timeProvider.Now()
	return &Prompt{
		ID:         id,
		Title:      title,
		PromptText: promptText,
		Cost:       cost,
		MediaType:  mediaType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Redacted returns a copy of the prompt with the sellable text removed.
// Used by every listing and by locked detail views.
func (p *Prompt) Redacted() *Prompt {
	clone := *p
	clone.PromptText = ""
	return &clone
}

// Locked reports whether the prompt text has been withheld from this copy
func (p *Prompt) Locked() bool {
	return p.PromptText == ""
}
