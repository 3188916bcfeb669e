package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

var ErrUnsupportedFormat = errors.New("export: unsupported file format")

// Encode writes img in the format named by the file extension of name.
// quality only applies to JPEG.
func Encode(out io.Writer, img image.Image, name string, quality int) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return png.Encode(out, img)
	case ".jpg", ".jpeg":
		if quality <= 0 || quality > 100 {
			quality = jpeg.DefaultQuality
		}
		return jpeg.Encode(out, img, &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Save encodes img into dir/name, creating dir if needed, and returns the
// written path.
func Save(dir, name string, img image.Image, quality int) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)

	var buf bytes.Buffer
	if err := Encode(&buf, img, name, quality); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// CopyToClipboard places img on the system clipboard as PNG.
func CopyToClipboard(img image.Image) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
		if clipboardErr != nil {
			log.Printf("export: clipboard unavailable: %v", clipboardErr)
		}
	})
	if clipboardErr != nil {
		return fmt.Errorf("export: clipboard: %w", clipboardErr)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("export: encode clipboard image: %w", err)
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
