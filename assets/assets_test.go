package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/photosticky/prefabs"
)

func TestDrawStickerShapes(t *testing.T) {
	fill := color.NRGBA{R: 0x10, G: 0xc0, B: 0x20, A: 0xff}
	ink := color.NRGBA{A: 0xff}

	tests := []struct {
		shape       string
		cornerClear bool
	}{
		{"circle", true},
		{"", true},
		{"star", true},
		{"heart", true},
		{"square", true},
	}
	for _, tc := range tests {
		t.Run("shape_"+tc.shape, func(t *testing.T) {
			img, err := DrawSticker(tc.shape, fill, ink, 128)
			if err != nil {
				t.Fatalf("DrawSticker: %v", err)
			}
			if img.Bounds().Dx() != 128 {
				t.Fatalf("unexpected bounds %v", img.Bounds())
			}
			// between the eyes and above the smile is plain fill
			if got := img.RGBAAt(64, 70); got.G < 0xa0 || got.A != 0xff {
				t.Fatalf("expected fill at centre, got %v", got)
			}
			if corner := img.RGBAAt(1, 1); tc.cornerClear && corner.A != 0 {
				t.Fatalf("expected transparent corner, got %v", corner)
			}
		})
	}

	if _, err := DrawSticker("hexagon", fill, ink, 64); err == nil {
		t.Fatalf("expected error for unknown shape")
	}
	if _, err := DrawSticker("circle", fill, ink, 0); err == nil {
		t.Fatalf("expected error for zero size")
	}
}

func TestStickerImageFromFile(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })

	src := image.NewRGBA(image.Rect(0, 0, 3, 5))
	f, err := os.Create(filepath.Join(dir, "custom.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := StickerImage(prefabs.StickerSpec{Name: "custom", Image: "custom.png"})
	if err != nil {
		t.Fatalf("StickerImage: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 5 {
		t.Fatalf("expected decoded file, got %v", img.Bounds())
	}

	img, err = StickerImage(prefabs.StickerSpec{Name: "drawn", Shape: "star"})
	if err != nil {
		t.Fatalf("StickerImage: %v", err)
	}
	if img.Bounds().Dx() != ArtSize {
		t.Fatalf("expected procedural art at %d, got %v", ArtSize, img.Bounds())
	}

	if _, err := StickerImage(prefabs.StickerSpec{Image: "missing.png"}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestListPhotosAndFitCover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PNG", "a.jpg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ListPhotos(dir)
	if err != nil {
		t.Fatalf("ListPhotos: %v", err)
	}
	if len(got) != 2 || filepath.Base(got[0]) != "a.jpg" || filepath.Base(got[1]) != "b.PNG" {
		t.Fatalf("unexpected photos %v", got)
	}
	if _, err := ListPhotos(filepath.Join(dir, "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}

	wide := Placeholder(800, 200)
	fit := FitCover(wide, 320, 400)
	if fit.Bounds().Dx() != 320 || fit.Bounds().Dy() != 400 {
		t.Fatalf("unexpected fit bounds %v", fit.Bounds())
	}
	if fit.RGBAAt(160, 200).A != 0xff {
		t.Fatalf("cover fit must leave no transparent gaps")
	}
}

func TestThumbnailKeepsAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			src.Set(x, y, color.White)
		}
	}
	th := Thumbnail(src, 40)
	if th.Bounds().Dx() != 40 || th.Bounds().Dy() != 40 {
		t.Fatalf("unexpected bounds %v", th.Bounds())
	}
	if th.RGBAAt(20, 20).A != 0xff {
		t.Fatalf("centre should be covered")
	}
	if th.RGBAAt(20, 2).A != 0 {
		t.Fatalf("letterbox band should stay transparent")
	}
}
