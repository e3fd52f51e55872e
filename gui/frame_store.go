package gui

// cleanable is implemented by stores that drop entries unused last frame.
type cleanable interface {
	cleanup(frame uint64)
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a typed store for widget state. Entries that were not
// touched during the previous frame are removed when the owning Context
// starts a new frame.
//
// Usage:
//
//	store := gui.NewFrameStore[MyState](ctx)
//	state := store.Get(id, MyState{})
//	state.Open = !state.Open
type FrameStore[T any] struct {
	ctx    *Context
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a store whose lifetime follows ctx.
func NewFrameStore[T any](ctx *Context) *FrameStore[T] {
	s := &FrameStore[T]{
		ctx:    ctx,
		states: make(map[ID]*stateEntry[T]),
	}
	ctx.stores = append(ctx.stores, s)
	return s
}

// Get returns the state for id, creating it from defaultVal if missing.
// The entry is marked as used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	if entry, ok := s.states[id]; ok {
		entry.lastFrame = s.ctx.frame
		return &entry.value
	}
	entry := &stateEntry[T]{value: defaultVal, lastFrame: s.ctx.frame}
	s.states[id] = entry
	return &entry.value
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	return len(s.states)
}

func (s *FrameStore[T]) cleanup(frame uint64) {
	if frame == 0 {
		return
	}
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}
