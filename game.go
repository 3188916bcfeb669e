package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/photosticky/assets"
	"github.com/milk9111/photosticky/common"
	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/ecs/entity"
	"github.com/milk9111/photosticky/ecs/render"
	"github.com/milk9111/photosticky/ecs/system"
	"github.com/milk9111/photosticky/export"
	"github.com/milk9111/photosticky/prefabs"
)

type mode int

const (
	modeChoose mode = iota
	modeEdit
)

// Options are the command line settings.
type Options struct {
	Debug     bool
	PhotoPath string
	PhotosDir string
	OutDir    string
}

type Game struct {
	frames int
	debug  bool

	app  *prefabs.AppSpec
	pack *prefabs.StickerPackSpec
	art  *render.Registry

	world     *ecs.World
	scheduler *ecs.Scheduler
	pointer   *system.PointerSystem
	haptics   *system.HapticsSystem
	projector *system.ProjectorSystem
	render    *system.RenderSystem
	canvas    ecs.Entity

	placeholder image.Image
	photos      []string
	photoIndex  int
	outDir      string

	mode       mode
	pickerOpen bool
	ui         *ebitenui.UI
	dirtyUI    bool

	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	app, err := prefabs.LoadAppSpec()
	if err != nil {
		return nil, err
	}
	pack, err := prefabs.LoadStickerPack()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:  opts.Debug,
		app:    app,
		pack:   pack,
		art:    render.NewRegistry(),
		world:  ecs.NewWorld(),
		outDir: app.Export.Dir,
	}
	if opts.OutDir != "" {
		g.outDir = opts.OutDir
	}
	photosDir := app.PhotosDir
	if opts.PhotosDir != "" {
		photosDir = opts.PhotosDir
	}

	g.world.SetHitSpace(ecs.NewHitSpace())
	screenX := (common.BaseWidth - app.Canvas.Width) / 2
	g.canvas, err = entity.NewCanvas(g.world, app.Canvas, screenX, common.CanvasTop)
	if err != nil {
		return nil, err
	}

	g.pointer = system.NewPointerSystem()
	g.haptics = system.NewHapticsSystem()
	g.haptics.Disabled = app.Haptics.Disabled
	g.projector = system.NewProjectorSystem(app.Projector)
	g.render = system.NewRenderSystem(app.Canvas)
	g.render.Debug = opts.Debug
	g.scheduler = ecs.NewScheduler(
		g.pointer,
		system.NewGestureSystem(),
		g.haptics,
		g.projector,
		system.NewTTLSystem(),
	)

	g.placeholder = assets.Placeholder(int(app.Canvas.Width), int(app.Canvas.Height))
	g.setPhoto(g.placeholder)

	if photos, err := assets.ListPhotos(photosDir); err == nil {
		g.photos = photos
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("photos: %v", err)
	}

	if opts.PhotoPath != "" {
		if err := g.loadPhoto(opts.PhotoPath); err != nil {
			return nil, err
		}
		g.mode = modeEdit
	}

	if w, err := prefabs.NewWatcher(prefabs.Dir); err == nil {
		g.watcher = w
	} else if opts.Debug {
		log.Printf("prefabs: hot reload disabled: %v", err)
	}

	g.ui = g.buildUI()
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
		g.render.Debug = g.debug
	}
	if g.mode == modeEdit && ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}

	g.ui.Update()
	g.pointer.Disabled = g.pickerOpen
	g.scheduler.Update(g.world)

	if g.dirtyUI {
		g.dirtyUI = false
		g.ui = g.buildUI()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Stickers: %d", g.frames, ebiten.ActualFPS(), len(entity.Stickers(g.world))))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops background work.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) setMode(m mode) {
	g.mode = m
	g.pickerOpen = false
	g.dirtyUI = true
}

func (g *Game) setPicker(open bool) {
	g.pickerOpen = open
	g.dirtyUI = true
}

func (g *Game) setPhoto(img image.Image) {
	fitted := assets.FitCover(img, int(g.app.Canvas.Width), int(g.app.Canvas.Height))
	entity.SetPhoto(g.world, g.canvas, fitted, assets.ToEbiten(fitted))
}

func (g *Game) loadPhoto(path string) error {
	img, err := assets.DecodeFile(path)
	if err != nil {
		return err
	}
	g.setPhoto(img)
	return nil
}

// choosePhoto steps through the photos directory, one image per press.
func (g *Game) choosePhoto() {
	if len(g.photos) == 0 {
		g.toast("You did not select any image.", true)
		return
	}
	path := g.photos[g.photoIndex%len(g.photos)]
	g.photoIndex++
	if err := g.loadPhoto(path); err != nil {
		log.Printf("photos: %v", err)
		g.toast("Could not open photo", true)
		return
	}
	g.setMode(modeEdit)
}

func (g *Game) usePhoto() {
	g.setMode(modeEdit)
}

func (g *Game) reset() {
	entity.ClearStickers(g.world)
	g.setPhoto(g.placeholder)
	g.setMode(modeChoose)
}

func (g *Game) addSticker(spec prefabs.StickerSpec) {
	sprite, err := g.stickerSprite(spec)
	if err != nil {
		log.Printf("stickers: %v", err)
		g.toast("Could not load sticker", true)
		return
	}
	_, err = entity.NewSticker(g.world, entity.StickerOptions{
		Name:     spec.Name,
		BaseSize: spec.Size(*g.pack),
		Sprite:   sprite,
		Gesture:  g.app.Gesture.Config(),
	})
	if err != nil {
		log.Printf("stickers: %v", err)
		g.toast("Could not add sticker", true)
		return
	}
	g.setPicker(false)
}

func (g *Game) stickerSprite(spec prefabs.StickerSpec) (component.Sprite, error) {
	return g.art.Sprite(spec)
}

func (g *Game) compose() (image.Image, error) {
	scene, err := export.SceneFromWorld(g.world, g.app.Canvas.Background.Color)
	if err != nil {
		return nil, err
	}
	return export.Render(scene, g.app.Export.Width)
}

func (g *Game) save() {
	img, err := g.compose()
	if err != nil {
		log.Printf("export: %v", err)
		g.toast("Save failed", true)
		return
	}
	path, err := export.Save(g.outDir, g.app.Export.FileName, img, g.app.Export.Quality)
	if err != nil {
		log.Printf("export: %v", err)
		g.toast("Save failed", true)
		return
	}
	log.Printf("export: saved %s", path)
	g.toast("Image saved", false)
}

func (g *Game) copyImage() {
	img, err := g.compose()
	if err == nil {
		err = export.CopyToClipboard(img)
	}
	if err != nil {
		log.Printf("export: %v", err)
		g.toast("Copy failed", true)
		return
	}
	g.toast("Image copied to clipboard", false)
}

func (g *Game) toast(text string, isErr bool) {
	if _, err := entity.ShowToast(g.world, text, isErr); err != nil {
		log.Printf("toast: %v", err)
	}
}

// pollWatcher applies prefab edits made while the app is running.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case prefabs.IsAppSpec(name):
		app, err := prefabs.LoadAppSpec()
		if err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		g.app = app
		g.projector.SetSpec(app.Projector)
		g.render.SetSpec(app.Canvas)
		g.haptics.Disabled = app.Haptics.Disabled
		entity.ApplyCanvasSpec(g.world, g.canvas, app.Canvas)
		cfg := app.Gesture.Config()
		ecs.ForEach(g.world, component.GestureComponent, func(_ ecs.Entity, gc *component.Gesture) {
			gc.Session.SetConfig(cfg)
		})
	default:
		pack, err := prefabs.LoadStickerPack()
		if err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		g.pack = pack
		g.art.Reset()
		g.dirtyUI = true
	}
	log.Printf("prefabs: reloaded %s", name)
}
