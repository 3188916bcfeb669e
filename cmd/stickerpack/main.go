package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"log"
	"path/filepath"

	"github.com/milk9111/photosticky/assets"
	"github.com/milk9111/photosticky/export"
	"github.com/milk9111/photosticky/prefabs"
)

// stickerpack renders every sticker of the pack to PNG files plus a single
// contact sheet, for checking art without starting the app.
func main() {
	out := flag.String("out", "stickers", "output directory")
	size := flag.Int("size", 128, "edge length of each rendered sticker")
	cols := flag.Int("cols", 3, "columns in sheet.png")
	flag.Parse()

	pack, err := prefabs.LoadStickerPack()
	if err != nil {
		log.Fatal(err)
	}
	if *size <= 0 || *cols <= 0 {
		log.Fatalf("stickerpack: size and cols must be positive")
	}

	rows := (len(pack.Stickers) + *cols - 1) / *cols
	sheet := image.NewRGBA(image.Rect(0, 0, *cols**size, rows**size))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, spec := range pack.Stickers {
		src, err := assets.StickerImage(spec)
		if err != nil {
			log.Printf("stickerpack: %s: %v", spec.Name, err)
			continue
		}
		thumb := assets.Thumbnail(src, *size)
		path, err := export.Save(*out, spec.Name+".png", thumb, 0)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("stickerpack: wrote %s", path)

		x := (i % *cols) * *size
		y := (i / *cols) * *size
		draw.Draw(sheet, image.Rect(x, y, x+*size, y+*size), thumb, image.Point{}, draw.Over)
	}

	path, err := export.Save(*out, "sheet.png", sheet, 0)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("stickerpack: wrote %s", filepath.Clean(path))
}
