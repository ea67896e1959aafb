package animation

import "sync/atomic"

// RotationState is the on/off flag the UI toggle flips and the driver reads.
type RotationState struct {
	on atomic.Bool
}

func NewRotationState(rotating bool) *RotationState {
	s := &RotationState{}
	s.on.Store(rotating)
	return s
}

// Toggle flips the state and returns the new value.
func (s *RotationState) Toggle() bool {
	for {
		old := s.on.Load()
		if s.on.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (s *RotationState) IsRotating() bool { return s.on.Load() }
