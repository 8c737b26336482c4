package reward

// DefaultPool is the fixed set of ad spots shown in the watch-and-earn flow
func DefaultPool() []AdItem {
	return []AdItem{
		{ID: "spot-aurora", Title: "Aurora Render Farm", MediaURL: "https://cdn.prompter.app/ads/aurora.mp4"},
		{ID: "spot-vector", Title: "Vector Studio Pro", MediaURL: "https://cdn.prompter.app/ads/vector.mp4"},
		{ID: "spot-lumen", Title: "Lumen GPU Cloud", MediaURL: "https://cdn.prompter.app/ads/lumen.mp4"},
		{ID: "spot-canvas", Title: "Canvas AI Suite", MediaURL: "https://cdn.prompter.app/ads/canvas.mp4"},
	}
}
