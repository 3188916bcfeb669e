package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/photosticky/assets"
	"github.com/milk9111/photosticky/common"
	"github.com/milk9111/photosticky/ecs/system"
	"golang.org/x/image/font/basicfont"
)

const thumbSize = 64

var (
	textWhite   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	buttonIdle  = color.NRGBA{R: 0x3a, G: 0x3f, B: 0x47, A: 0xff}
	buttonHover = color.NRGBA{R: 0x4b, G: 0x52, B: 0x5c, A: 0xff}
	buttonPress = color.NRGBA{R: 0xff, G: 0xd3, B: 0x3d, A: 0xff}
	panelColor  = color.NRGBA{R: 0x1b, G: 0x1e, B: 0x22, A: 0xf0}
)

type uiStyle struct {
	face   *ebtext.Face
	image  *widget.ButtonImage
	text   *widget.ButtonTextColor
	impact func(ebiten.VibrateOptions)
}

func newUIStyle(impact func(ebiten.VibrateOptions)) uiStyle {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return uiStyle{
		impact: impact,
		face:   &face,
		image:  &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonIdle),
			Hover:   imageui.NewNineSliceColor(buttonHover),
			Pressed: imageui.NewNineSliceColor(buttonPress),
		},
		text: &widget.ButtonTextColor{Idle: textWhite},
	}
}

func (s uiStyle) button(label string, onClick func()) *widget.Button {
	return s.pulseButton(label, system.HapticLight, onClick)
}

// pulseButton is a button that plays a haptic pulse before onClick.
func (s uiStyle) pulseButton(label string, pulse ebiten.VibrateOptions, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(s.image),
		widget.ButtonOpts.Text(label, s.face, s.text),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 32)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.impact != nil {
				s.impact(pulse)
			}
			onClick()
		}),
	)
}

// buildUI lays out the toolbar for the current mode and, when open, the
// sticker picker over the canvas.
func (g *Game) buildUI() *ebitenui.UI {
	style := newUIStyle(g.haptics.Impact)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	toolbar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	switch g.mode {
	case modeChoose:
		toolbar.AddChild(style.button("Choose a photo", g.choosePhoto))
		toolbar.AddChild(style.button("Use this photo", g.usePhoto))
	case modeEdit:
		toolbar.AddChild(style.button("Reset", g.reset))
		toolbar.AddChild(style.pulseButton("Add sticker", system.HapticMedium, func() { g.setPicker(true) }))
		toolbar.AddChild(style.button("Save", g.save))
		toolbar.AddChild(style.button("Copy", g.copyImage))
	}
	root.AddChild(toolbar)

	if g.pickerOpen {
		root.AddChild(g.buildPicker(style))
	}

	return &ebitenui.UI{Container: root}
}

func (g *Game) buildPicker(style uiStyle) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.CanvasWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(120),
		)),
	)
	header.AddChild(widget.NewText(widget.TextOpts.Text("Choose a sticker", style.face, textWhite)))
	header.AddChild(style.button("Close", func() { g.setPicker(false) }))
	panel.AddChild(header)

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Spacing(16, 16),
		)),
	)
	for _, spec := range g.pack.Stickers {
		sprite, err := g.stickerSprite(spec)
		if err != nil {
			continue
		}
		spec := spec
		thumb := ebiten.NewImageFromImage(assets.Thumbnail(sprite.Source, thumbSize))
		grid.AddChild(widget.NewGraphic(
			widget.GraphicOpts.Image(thumb),
			widget.GraphicOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(thumbSize, thumbSize),
				widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
					g.haptics.Impact(system.HapticMedium)
					g.addSticker(spec)
				}),
			),
		))
	}
	panel.AddChild(grid)
	return panel
}
