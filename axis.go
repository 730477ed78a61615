// SPDX-License-Identifier: Unlicense OR MIT

package draggable

import (
	"fmt"
	"strings"
)

// Axis is a set of drag directions.
type Axis uint8

// State is the settled position of a Button.
type State uint8

const (
	None Axis = iota
	Horizontal
	Vertical
	Both
)

const (
	// Initial is the position the button was laid out at.
	Initial State = iota
	// Target is the position anchored to the button's target view.
	Target
)

// Horizontal reports whether a includes the horizontal direction.
func (a Axis) Horizontal() bool {
	return a == Horizontal || a == Both
}

// Vertical reports whether a includes the vertical direction.
func (a Axis) Vertical() bool {
	return a == Vertical || a == Both
}

func (a Axis) String() string {
	switch a {
	case None:
		return "None"
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Both:
		return "Both"
	default:
		panic("invalid Axis")
	}
}

// ParseAxis returns the axis named s, ignoring case. "x" and "y" are
// accepted for the horizontal and vertical axes and "xy" for both.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "horizontal", "x":
		return Horizontal, nil
	case "vertical", "y":
		return Vertical, nil
	case "both", "xy":
		return Both, nil
	default:
		return None, fmt.Errorf("draggable: unknown axis %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	if a > Both {
		return nil, fmt.Errorf("draggable: invalid axis %d", a)
	}
	return []byte(strings.ToLower(a.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(b []byte) error {
	v, err := ParseAxis(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Not returns the opposite state.
func (s State) Not() State {
	switch s {
	case Initial:
		return Target
	case Target:
		return Initial
	default:
		panic("invalid State")
	}
}

func (s State) String() string {
	switch s {
	case Initial:
		return "Initial"
	case Target:
		return "Target"
	default:
		panic("invalid State")
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if s > Target {
		return nil, fmt.Errorf("draggable: invalid state %d", s)
	}
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "initial":
		*s = Initial
	case "target":
		*s = Target
	default:
		return fmt.Errorf("draggable: unknown state %q", b)
	}
	return nil
}
