package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedSpecs(t *testing.T) {
	app, err := LoadAppSpec()
	if err != nil {
		t.Fatalf("LoadAppSpec: %v", err)
	}
	if app.Canvas.Width != 320 || app.Canvas.Height != 400 {
		t.Fatalf("unexpected canvas %+v", app.Canvas)
	}
	if app.Export.Width != 440 || app.Export.FileName != "PhotoSticky.jpeg" {
		t.Fatalf("unexpected export spec %+v", app.Export)
	}
	cfg := app.Gesture.Config()
	if cfg.DoubleTapIntervalMs != 300 || cfg.TouchSlop != 8 {
		t.Fatalf("unexpected gesture config %+v", cfg)
	}
	if app.Haptics.Disabled {
		t.Fatalf("haptics should be on by default")
	}

	pack, err := LoadStickerPack()
	if err != nil {
		t.Fatalf("LoadStickerPack: %v", err)
	}
	if len(pack.Stickers) != 6 {
		t.Fatalf("expected 6 stickers, got %d", len(pack.Stickers))
	}
	for _, s := range pack.Stickers {
		if s.Size(*pack) != 100 {
			t.Fatalf("sticker %s: expected base size 100, got %v", s.Name, s.Size(*pack))
		}
		if s.Fill.Color == nil {
			t.Fatalf("sticker %s has no fill", s.Name)
		}
	}
}

func TestAppSpecDefaults(t *testing.T) {
	var spec AppSpec
	spec.applyDefaults()

	tests := []struct {
		name string
		ok   bool
	}{
		{"canvas_size", spec.Canvas.Width == 320 && spec.Canvas.Height == 400},
		{"export_width", spec.Export.Width == 440},
		{"export_name", spec.Export.FileName == "PhotoSticky.jpeg"},
		{"export_quality", spec.Export.Quality == 100},
		{"size_spring_damping", spec.Projector.SizeSpring.Damping == 15},
		{"wobble", spec.Projector.WobbleDegrees == 5 && spec.Projector.WobbleMs == 150},
		{"photos_dir", spec.PhotosDir == "photos"},
		{"background", spec.Canvas.Background.Color != nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.ok {
				t.Fatalf("default not applied: %+v", spec)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{"hex6", `"#ff8000"`, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, false},
		{"hex8", `"#ff800080"`, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x80}, false},
		{"no_hash", `"102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"named", `gold`, color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}, false},
		{"named_mixed_case", `Gold`, color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}, false},
		{"bad_length", `"#fff"`, nil, true},
		{"bad_digits", `"#gggggg"`, nil, true},
		{"not_scalar", `[1, 2]`, nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got.Color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	override := []byte("base_size: 64\nstickers:\n  - shape: circle\n    fill: red\n")
	if err := os.WriteFile(filepath.Join(dir, StickersFile), override, 0o644); err != nil {
		t.Fatal(err)
	}

	pack, err := LoadStickerPack()
	if err != nil {
		t.Fatalf("LoadStickerPack: %v", err)
	}
	if pack.BaseSize != 64 || len(pack.Stickers) != 1 || pack.Stickers[0].Name != "sticker_1" {
		t.Fatalf("expected disk override to win, got %+v", pack)
	}
	if _, ok := ModTime(StickersFile); !ok {
		t.Fatalf("expected mod time for disk file")
	}
	if got := Resolve("prefabs/art/x.png"); got != filepath.Join(dir, "art", "x.png") {
		t.Fatalf("unexpected resolved path %s", got)
	}

	empty := []byte("stickers: []\n")
	if err := os.WriteFile(filepath.Join(dir, StickersFile), empty, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStickerPack(); err == nil {
		t.Fatalf("expected error for empty pack")
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, StickersFile)
	if err := os.WriteFile(target, []byte("base_size: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Ext(name) == ".txt" {
				t.Fatalf("non-prefab file reported: %s", name)
			}
			if IsStickerPack(name) {
				return
			}
		case <-deadline:
			t.Fatalf("no event for %s", target)
		}
	}
}
