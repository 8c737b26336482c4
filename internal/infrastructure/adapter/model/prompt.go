package model

import (
	"time"

	"github.com/prompter-labs/prompter/internal/domain/entity"
)

// Prompt is the gorm model for the platform's prompts table
type Prompt struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Title       string `gorm:"not null"`
	Description string
	PromptText  string `gorm:"column:prompt_text;not null"`
	MediaURL    string `gorm:"column:media_url"`
	MediaType   string `gorm:"column:media_type;not null"`
	Cost        int    `gorm:"not null"`
	Category    string `gorm:"index"`
	Model       string `gorm:"index"`
	Author      string
	Sales       int
	Rating      float64
	Variables   []string `gorm:"serializer:json"`
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Prompt model
func (Prompt) TableName() string {
	return "prompts"
}

// ToEntity converts the row into a domain prompt
func (m *Prompt) ToEntity() *entity.Prompt {
	return &entity.Prompt{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		PromptText:  m.PromptText,
		MediaURL:    m.MediaURL,
		MediaType:   entity.MediaType(m.MediaType),
		Cost:        m.Cost,
		Category:    m.Category,
		Model:       m.Model,
		Author:      m.Author,
		Sales:       m.Sales,
		Rating:      m.Rating,
		Variables:   m.Variables,
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PromptFromEntity converts a domain prompt into its row form
func PromptFromEntity(p *entity.Prompt) *Prompt {
	return &Prompt{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		PromptText:  p.PromptText,
		MediaURL:    p.MediaURL,
		MediaType:   string(p.MediaType),
		Cost:        p.Cost,
		Category:    p.Category,
		Model:       p.Model,
		Author:      p.Author,
		Sales:       p.Sales,
		Rating:      p.Rating,
		Variables:   p.Variables,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
