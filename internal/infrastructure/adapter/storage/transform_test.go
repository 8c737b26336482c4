package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformURL(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		width    int
		quality  int
		expected string
	}{
		{
			name:     "public object URL is rewritten to a render URL",
			rawURL:   "https://media.example.co/storage/v1/object/public/prompt-assets/neon-city.png",
			width:    400,
			quality:  60,
			expected: "https://media.example.co/storage/v1/render/image/public/prompt-assets/neon-city.png?width=400&quality=60&resize=cover",
		},
		{
			name:     "external URL passes through",
			rawURL:   "https://cdn.other.example/img.png",
			width:    400,
			quality:  60,
			expected: "https://cdn.other.example/img.png",
		},
		{
			name:     "empty URL falls back to the placeholder",
			rawURL:   "",
			width:    400,
			quality:  60,
			expected: PlaceholderImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TransformURL(tt.rawURL, tt.width, tt.quality))
		})
	}
}

func TestRenditionHelpers(t *testing.T) {
	raw := "https://media.example.co/storage/v1/object/public/prompt-assets/a.jpg"

	assert.Contains(t, CardThumbnail(raw), "width=400&quality=60")
	assert.Contains(t, DetailImage(raw), "width=1200&quality=80")
	assert.Contains(t, MarqueeImage(raw), "width=600&quality=70")
}
