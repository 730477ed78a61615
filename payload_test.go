// SPDX-License-Identifier: Unlicense OR MIT

package draggable

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/layout"
)

type testContent struct {
	enters, leaves int
	permissions    []int
}

func (c *testContent) OnEnter(h Host) { c.enters++ }
func (c *testContent) OnLeave(h Host) { c.leaves++ }

func (c *testContent) OnPermissionResponse(code int, granted bool) {
	c.permissions = append(c.permissions, code)
}

func (c *testContent) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Dimensions{Size: gtx.Constraints.Min}
}

type testHost struct {
	mu       sync.Mutex
	contents map[string]Content
	saved    bool
	attached int
}

func newTestHost() *testHost {
	return &testHost{contents: make(map[string]Content)}
}

func (h *testHost) Attach(key string, f Factory) Content {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.contents[key]; ok {
		return c
	}
	c := f()
	h.contents[key] = c
	h.attached++
	return c
}

func (h *testHost) Lookup(key string) (Content, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.contents[key]
	return c, ok
}

func (h *testHost) Detach(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.contents, key)
}

func (h *testHost) StateSaved() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.saved
}

func newTestPayload(b *Button, h *testHost) *Payload {
	p := NewPayload("info", &b.Node, h, func() Content { return new(testContent) })
	b.AddPayload(p)
	return p
}

// waitPhase polls p until it reaches ph; the mock clock runs timer
// functions on their own goroutines.
func waitPhase(t *testing.T, p *Payload, ph Phase) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for p.Phase() != ph {
		if time.Now().After(deadline) {
			t.Fatalf("phase %v, want %v", p.Phase(), ph)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPayloadFollowsDrag(t *testing.T) {
	b, a, _ := newTestButton()
	h := newTestHost()
	p := newTestPayload(b, h)
	p.InitialTranslation = f32.Pt(0, 20)
	if p.Phase() != Uninitialized || p.Wrapper() != nil {
		t.Fatalf("payload created before the first touch")
	}
	ms := time.Millisecond
	send(t, b, press(10, 0))
	if p.Phase() != Active || p.Content() == nil {
		t.Fatalf("press did not create the content")
	}
	send(t, b, drag(20, 10*ms), drag(160, 20*ms))
	// The wrapper matches the button and is anchored at the top left
	// of the target, so its target translation is (300, 0).
	if got, want := p.Wrapper().Translation, f32.Pt(150, 10); got != want {
		t.Errorf("payload halfway at %v, want %v", got, want)
	}
	send(t, b, drag(260, 30*ms), release(260, 300*ms))
	settle(a)
	if got, want := p.Wrapper().Translation, f32.Pt(300, 0); got != want {
		t.Errorf("payload settled at %v, want %v", got, want)
	}
	c := p.Content().(*testContent)
	if c.enters != 1 || c.leaves != 0 {
		t.Errorf("content entered %d and left %d times", c.enters, c.leaves)
	}
	if err := b.MoveToState(Initial, false); err != nil {
		t.Fatal(err)
	}
	if c.leaves != 1 {
		t.Errorf("content left %d times", c.leaves)
	}
	// Never is the default teardown delay.
	if p.Phase() != Active {
		t.Errorf("phase %v after returning to the initial state", p.Phase())
	}
}

func TestPayloadStickToTarget(t *testing.T) {
	b, _, _ := newTestButton()
	p := newTestPayload(b, newTestHost())
	p.StickToTarget = true
	send(t, b, press(10, 0), drag(20, 10*time.Millisecond), drag(60, 20*time.Millisecond))
	if got, want := p.Wrapper().Translation, f32.Pt(300, 0); got != want {
		t.Errorf("sticky payload at %v, want %v", got, want)
	}
}

func TestPayloadTeardown(t *testing.T) {
	b, _, _ := newTestButton()
	h := newTestHost()
	p := newTestPayload(b, h)
	mock := clock.NewMock()
	p.Clock = mock
	p.DestroyAfter = 500 * time.Millisecond
	invalidated := make(chan struct{}, 1)
	p.Invalidate = func() { invalidated <- struct{}{} }

	// Settle back in the initial state.
	send(t, b, press(10, 0), pointer.Event{Kind: pointer.Cancel})
	if p.Phase() != PendingDestroy {
		t.Fatalf("phase %v, want %v", p.Phase(), PendingDestroy)
	}
	if p.Content() == nil {
		t.Fatal("content destroyed before its delay")
	}
	mock.Add(600 * time.Millisecond)
	waitPhase(t, p, Destroyed)
	<-invalidated
	if p.Content() != nil || p.Wrapper() != nil {
		t.Error("destroyed payload kept its content")
	}
	if _, ok := h.Lookup("info"); ok {
		t.Error("content still attached to its host")
	}
	// Touching again recreates the content.
	send(t, b, press(10, 0))
	if p.Phase() != Active || p.Content() == nil {
		t.Errorf("phase %v after a new touch", p.Phase())
	}
	if h.attached != 2 {
		t.Errorf("attached %d times, want 2", h.attached)
	}
}

func TestPayloadTeardownCancelled(t *testing.T) {
	b, _, _ := newTestButton()
	p := newTestPayload(b, newTestHost())
	mock := clock.NewMock()
	p.Clock = mock
	p.DestroyAfter = 500 * time.Millisecond

	send(t, b, press(10, 0), pointer.Event{Kind: pointer.Cancel})
	mock.Add(300 * time.Millisecond)
	send(t, b, press(10, 0))
	if p.Phase() != Active {
		t.Fatalf("phase %v after a new gesture", p.Phase())
	}
	c := p.Content()
	mock.Add(300 * time.Millisecond)
	// Give a wrongly fired timer a chance to run.
	time.Sleep(10 * time.Millisecond)
	if p.Phase() != Active || p.Content() != c {
		t.Errorf("content destroyed after its teardown was cancelled")
	}
}

func TestPayloadTeardownImmediately(t *testing.T) {
	b, _, _ := newTestButton()
	p := newTestPayload(b, newTestHost())
	p.DestroyAfter = Immediately
	send(t, b, press(10, 0), pointer.Event{Kind: pointer.Cancel})
	if p.Phase() != Destroyed {
		t.Errorf("phase %v, want %v", p.Phase(), Destroyed)
	}
}

func TestPayloadTeardownSaved(t *testing.T) {
	b, _, _ := newTestButton()
	h := newTestHost()
	p := newTestPayload(b, h)
	p.DestroyAfter = Immediately
	send(t, b, press(10, 0))
	h.saved = true
	send(t, b, pointer.Event{Kind: pointer.Cancel})
	if p.Phase() != Active || p.Content() == nil {
		t.Errorf("content destroyed after its host saved state")
	}
}

func TestPayloadPermissionResponse(t *testing.T) {
	b, _, _ := newTestButton()
	p := newTestPayload(b, newTestHost())
	b.PermissionResponse(1, true)
	send(t, b, press(10, 0))
	b.PermissionResponse(7, false)
	c := p.Content().(*testContent)
	if len(c.permissions) != 1 || c.permissions[0] != 7 {
		t.Errorf("permission responses %v, want [7]", c.permissions)
	}
}

func TestPayloadClose(t *testing.T) {
	b, _, _ := newTestButton()
	h := newTestHost()
	p := newTestPayload(b, h)
	send(t, b, press(10, 0))
	b.Close()
	if p.Phase() != Destroyed {
		t.Errorf("phase %v after Close", p.Phase())
	}
	if _, ok := h.Lookup("info"); ok {
		t.Error("closed payload left its content attached")
	}
}
