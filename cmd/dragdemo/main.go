// SPDX-License-Identifier: Unlicense OR MIT

package main

// A button that drags a drawer of payloads over the window.

import (
	"bytes"
	"errors"
	"flag"
	"image"
	"image/color"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/app"
	"gioui.org/draggable"
	"gioui.org/draggable/config"
	"gioui.org/draggable/content"
	"gioui.org/draggable/touch"
	"gioui.org/draggable/view"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

const defaultConfig = `
axis = "vertical"
anchor = "bottom"
animation = "300ms"
interpolator = "overshoot"
initial_z = 2.0
target_z = 8.0

[offset]
vertical = 16

[touch_area]
left = 24
top = 24
right = 24
bottom = 24

[[payload]]
key = "notes"
kind = "note"
anchor = "top"
initial_translation = [0.0, 0.0]
width = 280
height = 160
background = "#ffeceff1"
initial_z = 1.0
target_z = 4.0
destroy_after = "5s"
`

var (
	configFile = flag.String("config", "", "button configuration `file` (TOML)")
	stateDir   = flag.String("state", "", "directory for saved state; empty selects the user state directory")
)

func main() {
	flag.Parse()
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Draggable"), app.Size(unit.Dp(420), unit.Dp(760)))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	dir := *stateDir
	if dir == "" {
		if dir, err = config.StateDir("dragdemo"); err != nil {
			return err
		}
	}
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	d, err := newDemo(w, th, conf, dir)
	if err != nil {
		return err
	}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			if err := d.save(); err != nil {
				log.Printf("saving state: %v", err)
			}
			d.button.Close()
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if err := d.Layout(gtx); err != nil {
				return err
			}
			e.Frame(gtx.Ops)
		}
	}
}

func loadConfig() (*config.Config, error) {
	if *configFile != "" {
		return config.LoadFile(*configFile)
	}
	return config.Load(strings.NewReader(defaultConfig))
}

type demo struct {
	w        *app.Window
	th       *material.Theme
	conf     *config.Config
	stateDir string

	contents *content.Manager
	saved    config.States

	drawer  view.Node
	button  draggable.Button
	touches touch.Composite
	icon    *widget.Icon

	// configured is set once the configuration has been applied with
	// the metric of the window.
	configured bool
}

func newDemo(w *app.Window, th *material.Theme, conf *config.Config, dir string) (*demo, error) {
	icon, err := widget.NewIcon(icons.NavigationExpandLess)
	if err != nil {
		return nil, err
	}
	d := &demo{
		w:        w,
		th:       th,
		conf:     conf,
		stateDir: dir,
		contents: new(content.Manager),
		icon:     icon,
	}
	d.contents.Register("note", func() draggable.Content {
		return &note{th: th}
	})
	if d.saved, err = config.LoadStateFile(d.statePath()); err != nil {
		return nil, err
	}
	if err := d.resumeContents(); err != nil {
		return nil, err
	}
	d.drawer.Background = color.NRGBA{R: 0x37, G: 0x47, B: 0x4f, A: 0xff}
	d.button.Background = th.Palette.ContrastBg
	d.button.SetListener(draggable.ListenerFuncs{
		OnEnter: func(b *draggable.Button, s draggable.State, dir draggable.Axis, changed bool) {
			log.Printf("entered %v along %v (changed: %v)", s, dir, changed)
		},
		OnLeave: func(b *draggable.Button, s draggable.State) {
			log.Printf("left %v", s)
		},
	})
	return d, nil
}

func (d *demo) statePath() string {
	return filepath.Join(d.stateDir, "buttons.toml")
}

func (d *demo) contentsPath() string {
	return filepath.Join(d.stateDir, "contents.toml")
}

func (d *demo) resumeContents() error {
	data, err := os.ReadFile(d.contentsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return d.contents.Resume(bytes.NewReader(data))
}

func (d *demo) save() error {
	states := config.States{"main": d.button.Save()}
	if err := config.SaveStateFile(d.statePath(), states); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := d.contents.Persist(&buf); err != nil {
		return err
	}
	return os.WriteFile(d.contentsPath(), buf.Bytes(), 0o600)
}

// configure applies the configuration once the metric of the window is
// known.
func (d *demo) configure(gtx layout.Context) error {
	if d.configured {
		return nil
	}
	d.configured = true
	if err := d.conf.Apply(&d.button, gtx.Metric); err != nil {
		return err
	}
	d.conf.ApplyTouchArea(&d.button, &d.touches, gtx.Metric)
	if err := d.conf.AddPayloads(&d.button, d.contents, gtx.Metric); err != nil {
		return err
	}
	d.button.ForEachPayload(func(p *draggable.Payload) {
		p.Invalidate = d.w.Invalidate
	})
	d.place(gtx)
	d.button.SetTarget(&d.drawer, d.button.Anchor)
	if s, ok := d.saved["main"]; ok {
		d.button.Restore(s)
	}
	return nil
}

// place positions the drawer at the top of the window and the button
// at the bottom.
func (d *demo) place(gtx layout.Context) {
	size := gtx.Constraints.Max
	d.drawer.Fixed = image.Pt(size.X, size.Y/2)
	btn := gtx.Dp(64)
	d.button.Fixed = image.Pt(btn, btn)
	d.button.Origin = image.Pt((size.X-btn)/2, size.Y-btn-gtx.Dp(32))
}

func (d *demo) Layout(gtx layout.Context) error {
	if err := d.configure(gtx); err != nil {
		return err
	}
	d.place(gtx)
	d.touches.Layout(gtx)

	layers := []view.Layer{
		{Node: &d.drawer, Widget: func(gtx layout.Context) layout.Dimensions {
			return d.drawer.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			})
		}},
		{Node: &d.button.Node, Widget: func(gtx layout.Context) layout.Dimensions {
			return d.button.Layout(gtx, d.layoutIcon)
		}},
	}
	d.button.ForEachPayload(func(p *draggable.Payload) {
		if w := p.Wrapper(); w != nil {
			layers = append(layers, view.Layer{Node: w, Widget: p.Layout})
		}
	})
	view.Stack(gtx, layers...)
	return nil
}

func (d *demo) layoutIcon(gtx layout.Context) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = image.Point{}
		gtx.Constraints.Max = image.Pt(gtx.Dp(32), gtx.Dp(32))
		return d.icon.Layout(gtx, d.th.Palette.ContrastFg)
	})
}
