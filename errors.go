// SPDX-License-Identifier: Unlicense OR MIT

package draggable

import "errors"

var (
	// ErrNoTarget is returned when moving a button that has no target
	// view.
	ErrNoTarget = errors.New("draggable: button has no target view")
	// ErrAmbiguousTap is returned for a tap on a button whose drag
	// direction covers both axes.
	ErrAmbiguousTap = errors.New("draggable: cannot tap a button locked to both axes")
	// ErrNoGesture is returned for drag or release events that do not
	// follow a press.
	ErrNoGesture = errors.New("draggable: pointer event outside of a gesture")
	// ErrNoDirection is returned when the button cannot tell which
	// axis to settle along.
	ErrNoDirection = errors.New("draggable: no drag direction to settle along")
)
