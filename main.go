package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/photosticky/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (FPS overlay, sticker hit boxes)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	photo := flag.String("photo", "", "photo to start editing instead of the placeholder")
	photos := flag.String("photos", "", "directory cycled by \"Choose a photo\" (default from app.yaml)")
	out := flag.String("out", "", "directory saved images are written to (default from app.yaml)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("PhotoSticky")

	game, err := NewGame(Options{
		Debug:     *debug,
		PhotoPath: *photo,
		PhotosDir: *photos,
		OutDir:    *out,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
