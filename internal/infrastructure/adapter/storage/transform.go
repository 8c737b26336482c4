package storage

import (
	"fmt"
	"strings"
)

const (
	publicObjectPath = "/storage/v1/object/public/"
	renderImagePath  = "/storage/v1/render/image/public/"

	// PlaceholderImage is served when a prompt has no preview media
	PlaceholderImage = "/static/placeholder.svg"
)

// TransformURL rewrites a public object URL into a server-side resized
// rendition at the given width and JPEG quality. URLs that are not public
// object URLs (external hosts, data URIs) pass through untouched.
func TransformURL(rawURL string, width, quality int) string {
	if rawURL == "" {
		return PlaceholderImage
	}
	idx := strings.Index(rawURL, publicObjectPath)
	if idx < 0 {
		return rawURL
	}
	base := rawURL[:idx]
	object := rawURL[idx+len(publicObjectPath):]
	return fmt.Sprintf("%s%s%s?width=%d&quality=%d&resize=cover",
		base, renderImagePath, object, width, quality)
}

// CardThumbnail is the catalog grid rendition
func CardThumbnail(rawURL string) string {
	return TransformURL(rawURL, 400, 60)
}

// DetailImage is the full prompt detail rendition
func DetailImage(rawURL string) string {
	return TransformURL(rawURL, 1200, 80)
}

// MarqueeImage is the scrolling landing-strip rendition
func MarqueeImage(rawURL string) string {
	return TransformURL(rawURL, 600, 70)
}
