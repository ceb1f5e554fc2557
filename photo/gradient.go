// Package photo renders the pixel side of JPEG fixtures: two-color
// gradients, identification labels, and the splice that embeds an EXIF
// APP1 segment into an encoded JPEG stream.
package photo

import (
	"image"
	"image/color"
	"math"
)

// Pattern selects how the gradient blend factor varies across the image.
type Pattern string

const (
	PatternHorizontal Pattern = "horizontal"
	PatternVertical   Pattern = "vertical"
	PatternDiagonal   Pattern = "diagonal"
	PatternRadial     Pattern = "radial"
)

// Gradient renders a w-by-h interpolation from one color to another.
// Unknown patterns fall back to horizontal.
func Gradient(p Pattern, from, to color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, lerp(from, to, blend(p, x, y, w, h)))
		}
	}
	return img
}

func blend(p Pattern, x, y, w, h int) float64 {
	switch p {
	case PatternVertical:
		return float64(y) / float64(h)
	case PatternDiagonal:
		return (float64(x)/float64(w) + float64(y)/float64(h)) / 2
	case PatternRadial:
		cx, cy := float64(w/2), float64(h/2)
		dist := math.Hypot(float64(x)-cx, float64(y)-cy)
		return math.Min(dist/math.Hypot(cx, cy), 1)
	default:
		return float64(x) / float64(w)
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: channel(a.R, b.R, t),
		G: channel(a.G, b.G, t),
		B: channel(a.B, b.B, t),
		A: 0xFF,
	}
}

func channel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
