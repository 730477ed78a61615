// SPDX-License-Identifier: Unlicense OR MIT

package draggable

// SavedState is the state of a Button that survives the destruction
// of its window.
type SavedState struct {
	State          State    `toml:"state"`
	Direction      Axis     `toml:"direction"`
	PayloadKeys    []string `toml:"payload_keys"`
	PayloadHostIDs []int    `toml:"payload_host_ids"`
}

// Save returns the state of b.
func (b *Button) Save() SavedState {
	s := SavedState{
		State:     b.state,
		Direction: b.direction,
	}
	for _, p := range b.payloads {
		s.PayloadKeys = append(s.PayloadKeys, p.Key)
		s.PayloadHostIDs = append(s.PayloadHostIDs, p.HostID())
	}
	return s
}

// Restore applies a state returned by Save. Payload contents are
// re-attached by key only if the number of saved payloads matches the
// payloads of b. A Target state is applied without animation once b
// and its target view have been laid out.
func (b *Button) Restore(s SavedState) {
	b.direction = s.Direction
	n := len(b.payloads)
	if len(s.PayloadKeys) == n && len(s.PayloadHostIDs) == n {
		for i, p := range b.payloads {
			p.restore(s.PayloadHostIDs[i], s.PayloadKeys[i])
		}
	}
	switch {
	case s.State == Initial:
		changed := b.state != Initial
		b.state = Initial
		b.restorePending = false
		b.enterState(Initial, changed, true)
	case b.Axis != None && b.direction != None && b.TargetView != nil:
		b.state = s.State
		b.inTransition.Store(true)
		b.restorePending = true
	}
}
