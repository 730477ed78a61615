// SPDX-License-Identifier: Unlicense OR MIT

package draggable

import "gioui.org/layout"

// Content is the on-demand widget hosted by a Payload. It is created
// when its button is first touched and destroyed some time after the
// button returns to its initial state.
type Content interface {
	// OnEnter is called when the owning button settles at its target.
	OnEnter(h Host)
	// OnLeave is called when the owning button leaves its target.
	OnLeave(h Host)
	// OnPermissionResponse forwards the result of a permission request
	// made by the content.
	OnPermissionResponse(code int, granted bool)
	Layout(gtx layout.Context) layout.Dimensions
}

// Factory instantiates Content.
type Factory func() Content

// Host owns the contents of payloads by key.
type Host interface {
	// Attach returns the content stored under key, instantiating it
	// with f if there is none.
	Attach(key string, f Factory) Content
	// Lookup returns the content stored under key.
	Lookup(key string) (Content, bool)
	// Detach destroys the content stored under key.
	Detach(key string)
	// StateSaved reports whether the contents have been persisted and
	// must not be modified until they are resumed.
	StateSaved() bool
}
