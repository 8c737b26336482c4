package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"chatgpt", "ChatGPT"},
		{"chatgpt-image", "ChatGPT Image"},
		{"dall-e", "DALL-E"},
		{"midjourney", "Midjourney"},
		{"leonardo-ai", "Leonardo AI"},
		{"stable-diffusion", "Stable Diffusion"},
		{"CHATGPT", "ChatGPT"},
		{"logo-design", "Logo Design"},
		{"portrait", "Portrait"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.slug))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Cinematic Portrait", "cinematic-portrait"},
		{"  Neon   Cityscape  ", "neon-cityscape"},
		{"50% Off! (Limited)", "50-off-limited"},
		{"snake_case kept", "snake_case-kept"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.text))
		})
	}
}
