// SPDX-License-Identifier: Unlicense OR MIT

/*
Package view implements the positioned, translatable nodes that
draggable elements move around.

Gio has no retained view tree, so a Node records its own window
position. Nodes are laid out in window coordinates: the caller sets
Origin and Layout applies Origin plus Translation as a single offset.
*/
package view

import (
	"image"
	"image/color"
	"sort"

	"gioui.org/draggable/geom"
	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// MatchParent is a Fixed dimension that takes the parent's size.
const MatchParent = -1

// Node is a rectangular element positioned in window coordinates.
type Node struct {
	// ID identifies the node across save and restore.
	ID int
	// Origin is the untranslated position of the node.
	Origin image.Point
	// Translation moves the node away from its Origin.
	Translation f32.Point
	// Z is the elevation of the node. Higher nodes are drawn later
	// and receive touches first.
	Z float32
	// Fixed forces the size of the node if non-zero.
	Fixed image.Point
	// Inset is the padding reported to nodes anchored inside this one.
	Inset geom.Padding
	// Background fills the node before its content.
	Background color.NRGBA

	size image.Point
	laid bool
}

// Location implements geom.View.
func (n *Node) Location() image.Point {
	return n.Origin.Add(n.Translation.Round())
}

// Size implements geom.View. The size is known after the first
// Layout, or immediately for nodes with a Fixed size.
func (n *Node) Size() image.Point {
	if n.size == (image.Point{}) {
		return n.Fixed
	}
	return n.size
}

// Padding implements geom.View.
func (n *Node) Padding() geom.Padding {
	return n.Inset
}

// Laid reports whether the node has been laid out since creation.
func (n *Node) Laid() bool {
	return n.laid
}

// Bounds returns the translated area of the node in window
// coordinates.
func (n *Node) Bounds() image.Rectangle {
	loc := n.Location()
	return image.Rectangle{Min: loc, Max: loc.Add(n.Size())}
}

// Resize sets the size of the node without laying it out.
func (n *Node) Resize(sz image.Point) {
	n.size = sz
}

// Layout draws w at the translated location of the node.
func (n *Node) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer op.Offset(n.Location()).Push(gtx.Ops).Pop()
	// Nodes are positioned in window coordinates, so the incoming
	// constraints say nothing about their size.
	if n.Fixed != (image.Point{}) {
		gtx.Constraints = layout.Exact(n.Fixed)
	} else {
		gtx.Constraints.Min = image.Point{}
	}
	m := op.Record(gtx.Ops)
	dims := w(gtx)
	call := m.Stop()
	if n.Background.A > 0 {
		paint.FillShape(gtx.Ops, n.Background, clip.Rect{Max: dims.Size}.Op())
	}
	call.Add(gtx.Ops)
	n.size = dims.Size
	n.laid = true
	return dims
}

// Layer is a widget drawn at the elevation of its node.
type Layer struct {
	Node   *Node
	Widget layout.Widget
}

// Stack lays out layers from the lowest to the highest elevation.
// Layers of equal elevation keep their order.
func Stack(gtx layout.Context, layers ...Layer) {
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].Node.Z < layers[j].Node.Z
	})
	for _, l := range layers {
		l.Widget(gtx)
	}
}
