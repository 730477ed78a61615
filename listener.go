// SPDX-License-Identifier: Unlicense OR MIT

package draggable

// Listener observes the state changes of a Button.
type Listener interface {
	// EnterState is called when b settles in s. changed is false when
	// the button settled back into the state it left.
	EnterState(b *Button, s State, dir Axis, changed bool)
	// LeaveState is called when b starts moving away from s.
	LeaveState(b *Button, s State)
	// DragProgress is called with the progress from the initial to the
	// target position on every drag or animation step.
	DragProgress(b *Button, fraction float32)
}

// ListenerFuncs adapts functions to a Listener. Nil functions are
// skipped.
type ListenerFuncs struct {
	OnEnter    func(b *Button, s State, dir Axis, changed bool)
	OnLeave    func(b *Button, s State)
	OnProgress func(b *Button, fraction float32)
}

func (l ListenerFuncs) EnterState(b *Button, s State, dir Axis, changed bool) {
	if l.OnEnter != nil {
		l.OnEnter(b, s, dir, changed)
	}
}

func (l ListenerFuncs) LeaveState(b *Button, s State) {
	if l.OnLeave != nil {
		l.OnLeave(b, s)
	}
}

func (l ListenerFuncs) DragProgress(b *Button, fraction float32) {
	if l.OnProgress != nil {
		l.OnProgress(b, fraction)
	}
}
