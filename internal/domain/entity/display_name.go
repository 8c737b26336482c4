package entity

import "strings"

// specialDisplayNames maps model/category slugs whose display form cannot be
// derived by simple capitalization. This table is the single source of truth
// for brand display strings across every surface.
var specialDisplayNames = map[string]string{
	"chatgpt":          "ChatGPT",
	"chatgpt-image":    "ChatGPT Image",
	"dall-e":           "DALL-E",
	"veo":              "Veo",
	"midjourney":       "Midjourney",
	"midjourney-video": "Midjourney Video",
	"stable-diffusion": "Stable Diffusion",
	"leonardo-ai":      "Leonardo AI",
	"hailou-ai":        "Hailou AI",
	"kling-ai":         "Kling AI",
	"grok":             "Grok",
	"grok-image":       "Grok Image",
	"deepseek":         "DeepSeek",
	"gemini":           "Gemini",
	"gemini-image":     "Gemini Image",
	"llama":            "Llama",
	"qwen":             "Qwen",
	"qwen-image":       "Qwen Image",
	"flux":             "Flux",
	"sora":             "Sora",
	"wan":              "Wan",
	"claude":           "Claude",
	"hunyuan":          "Hunyuan",
	"ideogram":         "Ideogram",
	"imagen":           "Imagen",
	"recraft":          "Recraft",
	"seedance":         "Seedance",
	"seedream":         "Seedream",
}

// DisplayName formats a slug such as "chatgpt-image" into its display string.
// Special-cased brand names win; anything else is hyphen-split and
// title-cased word by word.
func DisplayName(slug string) string {
	if slug == "" {
		return ""
	}
	lower := strings.ToLower(slug)
	if name, ok := specialDisplayNames[lower]; ok {
		return name
	}

	words := strings.Split(lower, "-")
	formatted := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		formatted = append(formatted, strings.ToUpper(word[:1])+word[1:])
	}
	return strings.Join(formatted, " ")
}

// Slugify normalizes a title into a storage-key and URL friendly slug
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = strings.Join(strings.Fields(slug), "-")

	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
