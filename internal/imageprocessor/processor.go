package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// Processor normalizes profile images before they are persisted.
type Processor struct {
	maxWidth  int
	maxHeight int
	quality   int
}

// NewProcessor creates a processor with the given bounds and JPEG quality.
func NewProcessor(maxWidth, maxHeight, quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		quality:   quality,
	}
}

// Normalize decodes a JPEG/PNG payload, downscales it to fit the
// configured bounds and re-encodes it as JPEG. Payloads that are not
// decodable images are returned unchanged: the upstream system stored
// raw buffers without validation and existing clients rely on that.
func (p *Processor) Normalize(data []byte) []byte {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= p.maxWidth && bounds.Dy() <= p.maxHeight {
		return data
	}

	width, height := fitDimensions(bounds.Dx(), bounds.Dy(), p.maxWidth, p.maxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality})
	}
	if err != nil {
		return data
	}
	return buf.Bytes()
}

// fitDimensions scales (w, h) down proportionally into (maxW, maxH).
func fitDimensions(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}

	ratioW := float64(maxW) / float64(w)
	ratioH := float64(maxH) / float64(h)
	ratio := ratioW
	if ratioH < ratio {
		ratio = ratioH
	}

	nw := int(float64(w) * ratio)
	nh := int(float64(h) * ratio)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

// String describes the processor configuration, used in startup logs.
func (p *Processor) String() string {
	return fmt.Sprintf("imageprocessor(max=%dx%d q=%d)", p.maxWidth, p.maxHeight, p.quality)
}
