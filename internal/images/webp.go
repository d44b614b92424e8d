package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// MaxDimension bounds the longest edge of a stored asset.
	MaxDimension = 2000

	defaultQuality = 85
)

type Processed struct {
	Data   []byte
	Width  int
	Height int
}

// ToWebP decodes an uploaded image, scales it down to fit MaxDimension
// (never up) and re-encodes it as lossy WebP. All stored assets end up in
// one format so the delivery side has a single code path.
func ToWebP(r io.Reader) (*Processed, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("image has empty bounds")
	}

	if w > MaxDimension || h > MaxDimension {
		if w >= h {
			h = h * MaxDimension / w
			w = MaxDimension
		} else {
			w = w * MaxDimension / h
			h = MaxDimension
		}
		if h < 1 {
			h = 1
		}
		if w < 1 {
			w = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: defaultQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}

	return &Processed{
		Data:   buf.Bytes(),
		Width:  w,
		Height: h,
	}, nil
}
