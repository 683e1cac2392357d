package dropdown

// Handle is a weak reference into an Arena. A handle outlives the value it
// names; once the value is deleted, lookups through the handle fail instead of
// reaching a reused slot. The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// Valid reports whether h was ever issued.
func (h Handle) Valid() bool { return h.gen != 0 }

type arenaSlot[T any] struct {
	value T
	gen   uint32 // odd while occupied
}

// Arena is a type-safe slot store with generation-checked handles.
//
// Usage:
//
//	overlays := NewArena[*overlay]()
//	overlays.OnDelete(func(h Handle, ov *overlay) { ... })
//	h := overlays.Insert(ov)
//	if ov, ok := overlays.Get(h); ok { ... }
type Arena[T any] struct {
	slots    []arenaSlot[T]
	free     []uint32
	live     int
	onDelete func(Handle, T)
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// OnDelete registers fn to run after a value is removed.
func (a *Arena[T]) OnDelete(fn func(Handle, T)) {
	a.onDelete = fn
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, arenaSlot[T]{})
	}
	s := &a.slots[idx]
	s.gen++
	s.value = v
	a.live++
	return Handle{index: idx, gen: s.gen}
}

// Get resolves h.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	var zero T
	if !a.occupied(h) {
		return zero, false
	}
	return a.slots[h.index].value, true
}

func (a *Arena[T]) occupied(h Handle) bool {
	if !h.Valid() || int(h.index) >= len(a.slots) {
		return false
	}
	s := a.slots[h.index]
	return s.gen == h.gen && s.gen%2 == 1
}

// Delete removes the value named by h and runs the delete hook.
// It reports whether anything was removed.
func (a *Arena[T]) Delete(h Handle) bool {
	if !a.occupied(h) {
		return false
	}
	s := &a.slots[h.index]
	v := s.value
	var zero T
	s.value = zero
	s.gen++
	a.free = append(a.free, h.index)
	a.live--
	if a.onDelete != nil {
		a.onDelete(h, v)
	}
	return true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return a.live }

// Each calls fn for every live value in slot order.
func (a *Arena[T]) Each(fn func(Handle, T)) {
	for i := range a.slots {
		s := a.slots[i]
		if s.gen%2 == 1 {
			fn(Handle{index: uint32(i), gen: s.gen}, s.value)
		}
	}
}
