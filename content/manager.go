// SPDX-License-Identifier: Unlicense OR MIT

/*
Package content hosts the on-demand contents of payloads.

A Manager instantiates contents from factories registered by kind,
keeps them by key and persists them across window restarts. Contents
that implement encoding.TextMarshaler and encoding.TextUnmarshaler
have their state saved and restored along with them.
*/
package content

import (
	"encoding"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"

	"gioui.org/draggable"
)

// Manager is a draggable.Host. The zero value has no registered
// kinds; use Register or Attach with explicit factories.
type Manager struct {
	mu        sync.Mutex
	factories map[string]draggable.Factory
	instances map[string]*instance
	saved     bool
}

type instance struct {
	kind    string
	content draggable.Content
}

// snapshot is the persisted form of a Manager.
type snapshot struct {
	Contents []entry `toml:"content"`
}

type entry struct {
	Key   string `toml:"key"`
	Kind  string `toml:"kind"`
	State string `toml:"state,omitempty"`
}

var _ draggable.Host = (*Manager)(nil)

// Register makes f available under kind for Factory and Resume.
func (m *Manager) Register(kind string, f draggable.Factory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.factories == nil {
		m.factories = make(map[string]draggable.Factory)
	}
	m.factories[kind] = f
}

// Factory returns a factory that instantiates the registered kind and
// records it for persistence.
func (m *Manager) Factory(kind string) (draggable.Factory, error) {
	m.mu.Lock()
	f, ok := m.factories[kind]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("content: unknown kind %q", kind)
	}
	return func() draggable.Content {
		return &kinded{Content: f(), kind: kind}
	}, nil
}

// Attach implements draggable.Host.
func (m *Manager) Attach(key string, f draggable.Factory) draggable.Content {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inst, ok := m.instances[key]; ok {
		return inst.content
	}
	c := f()
	inst := &instance{content: c}
	if k, ok := c.(*kinded); ok {
		inst.kind = k.kind
		inst.content = k.Content
	}
	if m.instances == nil {
		m.instances = make(map[string]*instance)
	}
	m.instances[key] = inst
	m.saved = false
	return inst.content
}

// Lookup implements draggable.Host.
func (m *Manager) Lookup(key string) (draggable.Content, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inst, ok := m.instances[key]
	if !ok {
		return nil, false
	}
	return inst.content, true
}

// Detach implements draggable.Host.
func (m *Manager) Detach(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instances[key]; !ok {
		return
	}
	delete(m.instances, key)
	m.saved = false
}

// StateSaved implements draggable.Host.
func (m *Manager) StateSaved() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved
}

// Len returns the number of live contents.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.instances)
}

// Persist writes the live contents to w as TOML. Contents keep living
// but are not detached until the manager is resumed.
func (m *Manager) Persist(w io.Writer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var snap snapshot
	for key, inst := range m.instances {
		if inst.kind == "" {
			// Contents without a registered kind cannot be recreated.
			continue
		}
		e := entry{Key: key, Kind: inst.kind}
		if tm, ok := inst.content.(encoding.TextMarshaler); ok {
			b, err := tm.MarshalText()
			if err != nil {
				return fmt.Errorf("content: saving %q: %w", key, err)
			}
			e.State = string(b)
		}
		snap.Contents = append(snap.Contents, e)
	}
	es := snap.Contents
	sort.Slice(es, func(i, j int) bool { return es[i].Key < es[j].Key })
	if err := toml.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	m.saved = true
	return nil
}

// Resume recreates the contents persisted to r that are not live and
// allows teardowns again.
func (m *Manager) Resume(r io.Reader) error {
	var snap snapshot
	if _, err := toml.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range snap.Contents {
		if _, ok := m.instances[e.Key]; ok {
			continue
		}
		f, ok := m.factories[e.Kind]
		if !ok {
			return fmt.Errorf("content: unknown kind %q for %q", e.Kind, e.Key)
		}
		c := f()
		if e.State != "" {
			if tu, ok := c.(encoding.TextUnmarshaler); ok {
				if err := tu.UnmarshalText([]byte(e.State)); err != nil {
					return fmt.Errorf("content: restoring %q: %w", e.Key, err)
				}
			}
		}
		if m.instances == nil {
			m.instances = make(map[string]*instance)
		}
		m.instances[e.Key] = &instance{kind: e.Kind, content: c}
	}
	m.saved = false
	return nil
}

// kinded tags content created through Factory with its kind.
type kinded struct {
	draggable.Content
	kind string
}
