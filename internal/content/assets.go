package content

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/frizeriacentrala/site-api/internal/models"
)

// Transform carries optional delivery parameters for an asset URL.
type Transform struct {
	Width   int
	Height  int
	Format  string
	Quality int

	// Crop selects a pixel rectangle of the source image.
	Crop *Rect

	// Hotspot overrides the authored focal point.
	Hotspot *models.Hotspot
}

type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// AssetURL maps an image reference to a fully resolved URL on the asset
// base. Pure: no lookups, no side effects. Transform parameters are
// encoded as query parameters understood by the asset pipeline.
func AssetURL(baseURL string, img models.Image, t *Transform) string {
	if img.Key == "" {
		return ""
	}

	base := strings.TrimRight(baseURL, "/")
	raw := base + "/" + strings.TrimLeft(img.Key, "/")

	q := url.Values{}

	if t != nil {
		if t.Width > 0 {
			q.Set("w", strconv.Itoa(t.Width))
		}
		if t.Height > 0 {
			q.Set("h", strconv.Itoa(t.Height))
		}
		if t.Format != "" {
			q.Set("fm", t.Format)
		}
		if t.Quality > 0 {
			q.Set("q", strconv.Itoa(t.Quality))
		}
		if t.Crop != nil {
			q.Set("rect", fmt.Sprintf("%d,%d,%d,%d",
				t.Crop.Left, t.Crop.Top, t.Crop.Width, t.Crop.Height))
		}
	}

	hotspot := img.Hotspot
	if t != nil && t.Hotspot != nil {
		hotspot = t.Hotspot
	}
	if hotspot != nil {
		q.Set("fp-x", trimFloat(hotspot.X))
		q.Set("fp-y", trimFloat(hotspot.Y))
	}

	if len(q) == 0 {
		return raw
	}
	return raw + "?" + q.Encode()
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
