// SPDX-License-Identifier: Unlicense OR MIT

/*
Package config loads draggable buttons and their payloads from TOML.

Sizes and distances are in dp and converted to pixels with the metric
of the window the button is shown in. A configuration looks like

	axis = "vertical"
	anchor = "top"
	animation = "250ms"
	interpolator = "decelerate"

	[touch_area]
	left = 8
	right = 8

	[[payload]]
	key = "map"
	kind = "map"
	destroy_after = "1s"
*/
package config

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"gioui.org/draggable"
	"gioui.org/draggable/anim"
	"gioui.org/draggable/content"
	"gioui.org/draggable/geom"
	"gioui.org/draggable/touch"
	"gioui.org/draggable/view"
	"gioui.org/f32"
	"gioui.org/unit"
)

// Config describes a button.
type Config struct {
	Axis         draggable.Axis `toml:"axis"`
	Anchor       geom.Anchor    `toml:"anchor"`
	Offset       Offset         `toml:"offset"`
	Animation    Duration       `toml:"animation"`
	Interpolator string         `toml:"interpolator"`
	InitialZ     float32        `toml:"initial_z"`
	TargetZ      float32        `toml:"target_z"`
	Slop         float32        `toml:"slop"`
	MinFling     float32        `toml:"min_fling"`
	MaxFling     float32        `toml:"max_fling"`
	DisableClick bool           `toml:"disable_click"`
	// TouchArea extends the area that starts gestures, if set.
	TouchArea *Insets   `toml:"touch_area"`
	Payloads  []Payload `toml:"payload"`
}

// Payload describes a payload of a button.
type Payload struct {
	Key    string      `toml:"key"`
	Kind   string      `toml:"kind"`
	Anchor geom.Anchor `toml:"anchor"`
	Offset Offset      `toml:"offset"`
	// InitialTranslation is the x and y translation at zero progress.
	InitialTranslation [2]float32 `toml:"initial_translation"`
	// Width and Height of the payload. Negative values match the
	// button.
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	Background    Color   `toml:"background"`
	InitialZ      float32 `toml:"initial_z"`
	TargetZ       float32 `toml:"target_z"`
	DestroyAfter  Delay   `toml:"destroy_after"`
	StickToTarget bool    `toml:"stick_to_target"`
}

// Offset is a geom.Offset in dp.
type Offset struct {
	Horizontal int `toml:"horizontal"`
	Vertical   int `toml:"vertical"`
}

// Insets are touch.Insets in dp.
type Insets struct {
	Left   int `toml:"left"`
	Top    int `toml:"top"`
	Right  int `toml:"right"`
	Bottom int `toml:"bottom"`
}

// Duration is a time.Duration written as a Go duration string.
type Duration struct {
	time.Duration
}

// Delay is a payload teardown delay. Besides durations it accepts
// "never" and "immediately". The zero Delay is never.
type Delay struct {
	time.Duration
	set bool
}

// Color is a color written as #rrggbb, #aarrggbb or an SVG color name.
type Color struct {
	color.NRGBA
}

// Load decodes a configuration from r.
func Load(r io.Reader) (*Config, error) {
	c := new(Config)
	if _, err := toml.NewDecoder(r).Decode(c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile decodes the configuration file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (c *Config) validate() error {
	if _, err := anim.ParseCurve(c.Interpolator); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	keys := make(map[string]bool)
	for i, p := range c.Payloads {
		if p.Key == "" {
			return fmt.Errorf("config: payload %d has no key", i)
		}
		if keys[p.Key] {
			return fmt.Errorf("config: duplicate payload key %q", p.Key)
		}
		keys[p.Key] = true
		if p.Kind == "" {
			return fmt.Errorf("config: payload %q has no kind", p.Key)
		}
	}
	return nil
}

// Apply configures b for a window with metric m.
func (c *Config) Apply(b *draggable.Button, m unit.Metric) error {
	curve, err := anim.ParseCurve(c.Interpolator)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	b.Axis = c.Axis
	b.Anchor = c.Anchor
	b.Offset = c.Offset.px(m)
	b.Duration = c.Animation.Duration
	b.Curve = curve
	b.InitialZ = c.InitialZ
	b.TargetZ = c.TargetZ
	b.Z = c.InitialZ
	b.Slop = unit.Dp(c.Slop)
	b.MinFling = unit.Dp(c.MinFling)
	b.MaxFling = unit.Dp(c.MaxFling)
	b.DisableClick = c.DisableClick
	return nil
}

// ApplyTouchArea extends the touch area of b through comp, or restores
// it if the configuration has no touch area.
func (c *Config) ApplyTouchArea(b *draggable.Button, comp *touch.Composite, m unit.Metric) {
	if c.TouchArea == nil {
		b.RestoreTouchArea()
		return
	}
	in := c.TouchArea
	b.ExtendTouchArea(comp, touch.Insets{
		Left:   m.Dp(unit.Dp(in.Left)),
		Top:    m.Dp(unit.Dp(in.Top)),
		Right:  m.Dp(unit.Dp(in.Right)),
		Bottom: m.Dp(unit.Dp(in.Bottom)),
	})
}

// AddPayloads creates the configured payloads of b, with contents of
// the registered kinds of h.
func (c *Config) AddPayloads(b *draggable.Button, h *content.Manager, m unit.Metric) error {
	for _, pc := range c.Payloads {
		p, err := pc.New(&b.Node, h, m)
		if err != nil {
			return err
		}
		b.AddPayload(p)
	}
	return nil
}

// New returns a payload inside parent.
func (pc Payload) New(parent *view.Node, h *content.Manager, m unit.Metric) (*draggable.Payload, error) {
	f, err := h.Factory(pc.Kind)
	if err != nil {
		return nil, fmt.Errorf("config: payload %q: %w", pc.Key, err)
	}
	p := draggable.NewPayload(pc.Key, parent, h, f)
	p.Anchor = pc.Anchor
	p.Offset = pc.Offset.px(m)
	p.StickToTarget = pc.StickToTarget
	p.InitialTranslation = f32.Point{
		X: float32(m.Dp(unit.Dp(pc.InitialTranslation[0]))),
		Y: float32(m.Dp(unit.Dp(pc.InitialTranslation[1]))),
	}
	p.Width = size(pc.Width, m)
	p.Height = size(pc.Height, m)
	p.Background = pc.Background.NRGBA
	p.InitialZ = pc.InitialZ
	p.TargetZ = pc.TargetZ
	p.DestroyAfter = pc.DestroyAfter.Value()
	return p, nil
}

func size(dp int, m unit.Metric) int {
	if dp < 0 {
		return view.MatchParent
	}
	return m.Dp(unit.Dp(dp))
}

func (o Offset) px(m unit.Metric) geom.Offset {
	return geom.Offset{
		Horizontal: m.Dp(unit.Dp(o.Horizontal)),
		Vertical:   m.Dp(unit.Dp(o.Vertical)),
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Value returns the teardown delay for draggable.Payload.DestroyAfter.
func (d Delay) Value() time.Duration {
	if !d.set {
		return draggable.Never
	}
	return d.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Delay) UnmarshalText(b []byte) error {
	switch s := strings.ToLower(string(b)); s {
	case "never":
		*d = Delay{Duration: draggable.Never, set: true}
	case "immediately":
		*d = Delay{Duration: draggable.Immediately, set: true}
	default:
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("negative delay %q", s)
		}
		*d = Delay{Duration: v, set: true}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Delay) MarshalText() ([]byte, error) {
	switch v := d.Value(); v {
	case draggable.Never:
		return []byte("never"), nil
	case draggable.Immediately:
		return []byte("immediately"), nil
	default:
		return []byte(v.String()), nil
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	c.NRGBA = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	v := c.NRGBA
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", v.A, v.R, v.G, v.B)), nil
}

// ParseColor parses #rrggbb, #aarrggbb or an SVG color name.
func ParseColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	c := color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}
