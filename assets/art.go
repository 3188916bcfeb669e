package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/milk9111/photosticky/prefabs"
	"golang.org/x/image/vector"
)

// ArtSize is the edge length sticker art is rasterised at. It covers the
// doubled size of a 100px sticker without upscaling.
const ArtSize = 256

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

var (
	defaultFill = color.NRGBA{R: 0xff, G: 0xcc, B: 0x33, A: 0xff}
	defaultInk  = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// StickerImage returns the artwork for a sticker spec: the decoded image
// file when Image is set, otherwise a procedurally drawn face.
func StickerImage(spec prefabs.StickerSpec) (image.Image, error) {
	if spec.Image != "" {
		return DecodeFile(prefabs.Resolve(spec.Image))
	}
	return DrawSticker(spec.Shape, spec.Fill.Or(defaultFill), spec.Ink.Or(defaultInk), ArtSize)
}

// DrawSticker rasterises a face sticker of the given shape.
func DrawSticker(shape string, fill, ink color.Color, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("assets: sticker size %d must be positive", size)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float32(size)
	z := vector.NewRasterizer(size, size)

	switch shape {
	case "", "circle":
		circlePath(z, s/2, s/2, s*0.46)
	case "square":
		roundedRectPath(z, s*0.06, s*0.06, s*0.94, s*0.94, s*0.16)
	case "star":
		starPath(z, s/2, s*0.53, s*0.48, s*0.22, 5)
	case "heart":
		heartPath(z, s)
	default:
		return nil, fmt.Errorf("assets: unknown sticker shape %q", shape)
	}
	fillPath(z, dst, fill)

	// eyes
	z.Reset(size, size)
	circlePath(z, s*0.38, s*0.45, s*0.045)
	circlePath(z, s*0.62, s*0.45, s*0.045)
	fillPath(z, dst, ink)

	// smile: a crescent between two quadratic arcs
	z.Reset(size, size)
	z.MoveTo(s*0.36, s*0.58)
	z.QuadTo(s*0.5, s*0.74, s*0.64, s*0.58)
	z.QuadTo(s*0.5, s*0.68, s*0.36, s*0.58)
	z.ClosePath()
	fillPath(z, dst, ink)

	return dst, nil
}

func fillPath(z *vector.Rasterizer, dst *image.RGBA, c color.Color) {
	z.DrawOp = draw.Over
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func circlePath(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

func roundedRectPath(z *vector.Rasterizer, x0, y0, x1, y1, r float32) {
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.QuadTo(x1, y0, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.QuadTo(x1, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.QuadTo(x0, y1, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.QuadTo(x0, y0, x0+r, y0)
	z.ClosePath()
}

func starPath(z *vector.Rasterizer, cx, cy, outer, inner float32, points int) {
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/float64(points)
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func heartPath(z *vector.Rasterizer, s float32) {
	z.MoveTo(s*0.5, s*0.92)
	z.CubeTo(s*0.1, s*0.66, s*0.0, s*0.36, s*0.12, s*0.2)
	z.CubeTo(s*0.26, s*0.04, s*0.46, s*0.1, s*0.5, s*0.26)
	z.CubeTo(s*0.54, s*0.1, s*0.74, s*0.04, s*0.88, s*0.2)
	z.CubeTo(s*1.0, s*0.36, s*0.9, s*0.66, s*0.5, s*0.92)
	z.ClosePath()
}

// Placeholder draws the photo shown before the user picks one: a dusk sky
// over two hills.
func Placeholder(w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}
	top := color.NRGBA{R: 0x2b, G: 0x3a, B: 0x67, A: 0xff}
	bottom := color.NRGBA{R: 0xf2, G: 0xa6, B: 0x5a, A: 0xff}
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := color.NRGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 0xff,
		}
		for x := 0; x < w; x++ {
			dst.SetNRGBA(x, y, c)
		}
	}

	fw, fh := float32(w), float32(h)
	z := vector.NewRasterizer(w, h)
	circlePath(z, fw*0.72, fh*0.42, fw*0.09)
	fillPath(z, dst, color.NRGBA{R: 0xff, G: 0xe8, B: 0xa3, A: 0xff})

	z.Reset(w, h)
	z.MoveTo(0, fh)
	z.LineTo(0, fh*0.7)
	z.QuadTo(fw*0.3, fh*0.52, fw*0.62, fh*0.72)
	z.LineTo(fw*0.62, fh)
	z.ClosePath()
	fillPath(z, dst, color.NRGBA{R: 0x3d, G: 0x5a, B: 0x4a, A: 0xff})

	z.Reset(w, h)
	z.MoveTo(fw*0.3, fh)
	z.QuadTo(fw*0.7, fh*0.55, fw, fh*0.68)
	z.LineTo(fw, fh)
	z.ClosePath()
	fillPath(z, dst, color.NRGBA{R: 0x2a, G: 0x44, B: 0x38, A: 0xff})
	return dst
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}
