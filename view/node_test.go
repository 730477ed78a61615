// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
)

func TestNodeGeometry(t *testing.T) {
	n := &Node{Origin: image.Pt(10, 20), Fixed: image.Pt(30, 40)}
	if got, want := n.Size(), image.Pt(30, 40); got != want {
		t.Errorf("fixed size: got %v, want %v", got, want)
	}
	n.Translation = f32.Pt(5.4, -10.6)
	if got, want := n.Location(), image.Pt(15, 9); got != want {
		t.Errorf("location: got %v, want %v", got, want)
	}
	if got, want := n.Bounds(), image.Rect(15, 9, 45, 49); got != want {
		t.Errorf("bounds: got %v, want %v", got, want)
	}
}

func TestNodeLayout(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(200, 200)),
	}
	n := &Node{Background: color.NRGBA{A: 0xff}}
	if n.Laid() {
		t.Fatal("node laid out before Layout")
	}
	dims := n.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if gtx.Constraints.Min != (image.Point{}) {
			t.Errorf("unexpected min constraint %v", gtx.Constraints.Min)
		}
		return layout.Dimensions{Size: image.Pt(25, 35)}
	})
	if dims.Size != image.Pt(25, 35) || n.Size() != dims.Size {
		t.Errorf("got dims %v and size %v, want (25,35)", dims.Size, n.Size())
	}
	if !n.Laid() {
		t.Error("node not laid out")
	}

	fixed := &Node{Fixed: image.Pt(50, 60)}
	fixed.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if got, want := gtx.Constraints, layout.Exact(image.Pt(50, 60)); got != want {
			t.Errorf("constraints: got %v, want %v", got, want)
		}
		return layout.Dimensions{Size: gtx.Constraints.Min}
	})
}

func TestStack(t *testing.T) {
	gtx := layout.Context{Ops: new(op.Ops)}
	var order []string
	layer := func(name string, z float32) Layer {
		return Layer{
			Node: &Node{Z: z},
			Widget: func(gtx layout.Context) layout.Dimensions {
				order = append(order, name)
				return layout.Dimensions{}
			},
		}
	}
	Stack(gtx, layer("top", 10), layer("a", 0), layer("mid", 5), layer("b", 0))
	want := []string{"a", "b", "mid", "top"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got order %v, want %v", order, want)
		}
	}
}
