package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/photosticky/anim"
	"github.com/milk9111/photosticky/gesture"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	AppFile      = "app.yaml"
	StickersFile = "stickers.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AppSpec struct {
	Canvas    CanvasSpec    `yaml:"canvas"`
	Gesture   GestureSpec   `yaml:"gesture"`
	Projector ProjectorSpec `yaml:"projector"`
	Export    ExportSpec    `yaml:"export"`
	Haptics   HapticsSpec   `yaml:"haptics"`
	PhotosDir string        `yaml:"photos_dir"`
}

type CanvasSpec struct {
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	Anchor     PointSpec `yaml:"anchor"`
	Background YAMLColor `yaml:"background"`
	Border     YAMLColor `yaml:"border"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type GestureSpec struct {
	TouchSlop           float64 `yaml:"touch_slop"`
	TapTimeoutMs        int64   `yaml:"tap_timeout_ms"`
	DoubleTapIntervalMs int64   `yaml:"double_tap_interval_ms"`
	DoubleTapDistance   float64 `yaml:"double_tap_distance"`
}

// Config converts the spec to interpreter thresholds; zero fields use defaults.
func (g GestureSpec) Config() gesture.Config {
	return gesture.Config{
		TouchSlop:           g.TouchSlop,
		TapTimeoutMs:        g.TapTimeoutMs,
		DoubleTapIntervalMs: g.DoubleTapIntervalMs,
		DoubleTapDistance:   g.DoubleTapDistance,
	}
}

type SpringSpec struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	Mass      float64 `yaml:"mass"`
}

func (s SpringSpec) Config() anim.SpringConfig {
	return anim.SpringConfig{Stiffness: s.Stiffness, Damping: s.Damping, Mass: s.Mass}
}

type ProjectorSpec struct {
	SizeSpring     SpringSpec `yaml:"size_spring"`
	PositionSpring SpringSpec `yaml:"position_spring"`
	PhotoSpring    SpringSpec `yaml:"photo_spring"`
	// WobbleDegrees is the amplitude of the rotation wobble on double tap.
	WobbleDegrees float64 `yaml:"wobble_degrees"`
	WobbleMs      float64 `yaml:"wobble_ms"`
}

// HapticsSpec controls vibration feedback on taps and button presses.
type HapticsSpec struct {
	Disabled bool `yaml:"disabled"`
}

type ExportSpec struct {
	Width    int    `yaml:"width"`
	FileName string `yaml:"file_name"`
	Dir      string `yaml:"dir"`
	Quality  int    `yaml:"quality"`
}

type StickerPackSpec struct {
	BaseSize float64       `yaml:"base_size"`
	Stickers []StickerSpec `yaml:"stickers"`
}

type StickerSpec struct {
	Name string `yaml:"name"`
	// Shape is one of circle, star, heart or square. Ignored when Image is set.
	Shape string    `yaml:"shape"`
	Image string    `yaml:"image"`
	Fill  YAMLColor `yaml:"fill"`
	Ink   YAMLColor `yaml:"ink"`
	// BaseSize overrides the pack base size for this sticker.
	BaseSize float64 `yaml:"base_size"`
}

// Size returns the sticker's base size, falling back to the pack default.
func (s StickerSpec) Size(pack StickerPackSpec) float64 {
	if s.BaseSize != 0 {
		return s.BaseSize
	}
	return pack.BaseSize
}

// LoadAppSpec loads app.yaml and fills unset values with defaults.
func LoadAppSpec() (*AppSpec, error) {
	spec, err := LoadSpec[AppSpec](AppFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *AppSpec) applyDefaults() {
	if s.Canvas.Width <= 0 {
		s.Canvas.Width = 320
	}
	if s.Canvas.Height <= 0 {
		s.Canvas.Height = 400
	}
	if s.Canvas.Background.Color == nil {
		s.Canvas.Background.Color = color.NRGBA{R: 0x25, G: 0x29, B: 0x2e, A: 0xff}
	}
	if s.Canvas.Border.Color == nil {
		s.Canvas.Border.Color = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x33}
	}
	if s.Projector.SizeSpring.Damping <= 0 {
		s.Projector.SizeSpring.Damping = 15
	}
	if s.Projector.PhotoSpring.Damping <= 0 {
		s.Projector.PhotoSpring.Damping = 15
	}
	if s.Projector.WobbleDegrees == 0 {
		s.Projector.WobbleDegrees = 5
	}
	if s.Projector.WobbleMs <= 0 {
		s.Projector.WobbleMs = 150
	}
	if s.Export.Width <= 0 {
		s.Export.Width = 440
	}
	if s.Export.FileName == "" {
		s.Export.FileName = "PhotoSticky.jpeg"
	}
	if s.Export.Dir == "" {
		s.Export.Dir = "."
	}
	if s.Export.Quality <= 0 || s.Export.Quality > 100 {
		s.Export.Quality = 100
	}
	if s.PhotosDir == "" {
		s.PhotosDir = "photos"
	}
}

// LoadStickerPack loads stickers.yaml. A pack without entries is an error.
func LoadStickerPack() (*StickerPackSpec, error) {
	spec, err := LoadSpec[StickerPackSpec](StickersFile)
	if err != nil {
		return nil, err
	}
	if spec.BaseSize == 0 {
		spec.BaseSize = 100
	}
	if len(spec.Stickers) == 0 {
		return nil, fmt.Errorf("prefabs: %s: no stickers defined", StickersFile)
	}
	for i := range spec.Stickers {
		if spec.Stickers[i].Name == "" {
			spec.Stickers[i].Name = fmt.Sprintf("sticker_%d", i+1)
		}
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// UnmarshalYAML accepts #rrggbb, #rrggbbaa or an SVG colour name.
func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value.Value))]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the colour, or fallback when unset.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
