package system

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/photosticky/ecs"
	"github.com/milk9111/photosticky/ecs/component"
	"github.com/milk9111/photosticky/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem draws the canvas photo, the sticker poses on top of it and
// any status toasts.
type RenderSystem struct {
	background color.Color
	border     color.Color
	face       ebtext.Face

	// Debug strokes the logical hit box of every sticker.
	Debug bool
}

func NewRenderSystem(spec prefabs.CanvasSpec) *RenderSystem {
	r := &RenderSystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
	r.SetSpec(spec)
	return r
}

// SetSpec updates the canvas colours, used on hot reload.
func (r *RenderSystem) SetSpec(spec prefabs.CanvasSpec) {
	if r == nil {
		return
	}
	r.background = spec.Background.Or(color.Black)
	r.border = spec.Border.Or(color.Transparent)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	ce, ok := w.First(component.CanvasComponent)
	if !ok {
		return
	}
	canvas, _ := ecs.Get(w, ce, component.CanvasComponent)

	x, y := float32(canvas.ScreenX), float32(canvas.ScreenY)
	cw, ch := float32(canvas.Width), float32(canvas.Height)
	vector.FillRect(screen, x, y, cw, ch, r.background, false)

	bounds := image.Rect(int(canvas.ScreenX), int(canvas.ScreenY), int(canvas.ScreenX+canvas.Width), int(canvas.ScreenY+canvas.Height))
	dst, ok := screen.SubImage(bounds).(*ebiten.Image)
	if !ok {
		dst = screen
	}

	r.drawPhoto(dst, canvas)

	entities := w.Query(component.PoseComponent, component.SpriteComponent)
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		pose, _ := ecs.Get(w, e, component.PoseComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)
		if s.Image == nil {
			continue
		}
		size := pose.Size.Value
		if size <= 0 {
			continue
		}
		left := canvas.ScreenX + canvas.AnchorX + pose.X.Value
		top := canvas.ScreenY + canvas.AnchorY + pose.Y.Value

		iw := float64(s.Image.Bounds().Dx())
		ih := float64(s.Image.Bounds().Dy())

		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Translate(-iw/2, -ih/2)
		op.GeoM.Scale(size/iw, size/ih)
		op.GeoM.Rotate(PoseRotation(pose) * math.Pi / 180)
		op.GeoM.Translate(left+size/2, top+size/2)
		op.ColorScale.ScaleAlpha(float32(PoseOpacity(pose)))
		dst.DrawImage(s.Image, op)

		if r.Debug {
			if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
				lx := canvas.ScreenX + canvas.AnchorX + t.Position.X
				ly := canvas.ScreenY + canvas.AnchorY + t.Position.Y
				sz := float32(t.Size())
				vector.StrokeRect(dst, float32(lx), float32(ly), sz, sz, 1, colornames.Red, false)
			}
		}
	}

	vector.StrokeRect(screen, x, y, cw, ch, 1, r.border, false)

	r.drawToasts(w, screen, canvas)
}

func (r *RenderSystem) drawPhoto(dst *ebiten.Image, canvas *component.Canvas) {
	if canvas.PhotoImage == nil {
		return
	}
	scale := canvas.Scale.Value
	if scale <= 0 {
		return
	}
	iw := float64(canvas.PhotoImage.Bounds().Dx())
	ih := float64(canvas.PhotoImage.Bounds().Dy())

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(canvas.Width/iw*scale, canvas.Height/ih*scale)
	op.GeoM.Translate(canvas.ScreenX+canvas.Width/2, canvas.ScreenY+canvas.Height/2)
	if canvas.Opacity != nil {
		op.ColorScale.ScaleAlpha(float32(canvas.Opacity.Value()))
	}
	dst.DrawImage(canvas.PhotoImage, op)
}

func (r *RenderSystem) drawToasts(w *ecs.World, screen *ebiten.Image, canvas *component.Canvas) {
	y := canvas.ScreenY + canvas.Height - 28
	ecs.ForEach(w, component.ToastComponent, func(e ecs.Entity, t *component.Toast) {
		tw, th := ebtext.Measure(t.Text, r.face, 0)
		pad := 6.0
		bx := canvas.ScreenX + (canvas.Width-tw)/2 - pad
		bg := color.NRGBA{A: 0xc0}
		if t.Error {
			bg = color.NRGBA{R: 0x8b, A: 0xd0}
		}
		vector.FillRect(screen, float32(bx), float32(y-pad), float32(tw+2*pad), float32(th+2*pad), bg, false)

		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(bx+pad, y)
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, t.Text, r.face, op)
		y -= th + 3*pad
	})
}
