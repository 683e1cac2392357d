package dropdown

import "unsafe"

// optionText is the `\n`-delimited option buffer. It is either owned by the
// store (allocated, mutable, freed on replacement) or borrowed from the caller.
type optionText interface {
	text() string
	// release frees the buffer if the store owns it.
	release(a Allocator)
}

// ownedText is a buffer obtained from the store's Allocator.
type ownedText struct {
	buf []byte
}

// text views the buffer without copying. The buffer is never mutated in
// place; growth allocates a new one, so the view stays valid until release.
func (t ownedText) text() string {
	if len(t.buf) == 0 {
		return ""
	}
	return unsafe.String(&t.buf[0], len(t.buf))
}

func (t ownedText) release(a Allocator) {
	a.Free(t.buf)
}

// borrowedText references caller memory that outlives the control.
type borrowedText struct {
	s string
}

func (t borrowedText) text() string { return t.s }

func (borrowedText) release(Allocator) {}

// newOwnedText copies parts into a single buffer obtained from a.
func newOwnedText(a Allocator, parts ...string) (ownedText, error) {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	buf, err := a.Alloc(n)
	if err != nil {
		return ownedText{}, err
	}
	off := 0
	for _, p := range parts {
		off += copy(buf[off:], p)
	}
	return ownedText{buf: buf}, nil
}
