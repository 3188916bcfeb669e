package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var photoExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// IsPhoto reports whether path has a decodable image extension.
func IsPhoto(path string) bool {
	return photoExts[strings.ToLower(filepath.Ext(path))]
}

// DecodeFile decodes an image file of any registered format.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// ListPhotos returns the decodable images directly inside dir, sorted by name.
func ListPhotos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !IsPhoto(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// FitCover scales src to fill w x h, cropping the overflow around the centre.
func FitCover(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src == nil || w <= 0 || h <= 0 {
		return dst
	}
	b := src.Bounds()
	if b.Empty() {
		return dst
	}
	sw, sh := float64(b.Dx()), float64(b.Dy())
	scale := max(float64(w)/sw, float64(h)/sh)
	cropW := int(float64(w) / scale)
	cropH := int(float64(h) / scale)
	x0 := b.Min.X + (b.Dx()-cropW)/2
	y0 := b.Min.Y + (b.Dy()-cropH)/2
	crop := image.Rect(x0, y0, x0+cropW, y0+cropH)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}

// ToEbiten uploads a CPU image for drawing.
func ToEbiten(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// Thumbnail scales src to fit inside a size x size square, centred, keeping
// its aspect ratio.
func Thumbnail(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if src == nil || size <= 0 || src.Bounds().Empty() {
		return dst
	}
	b := src.Bounds()
	scale := min(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	w := max(int(float64(b.Dx())*scale), 1)
	h := max(int(float64(b.Dy())*scale), 1)
	x0 := (size - w) / 2
	y0 := (size - h) / 2
	xdraw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), src, b, xdraw.Over, nil)
	return dst
}
