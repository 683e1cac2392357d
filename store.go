package dropdown

import (
	"fmt"
	"math"
	"strings"
)

// PosLast appends an option after the current last one.
const PosLast = math.MaxInt32

// OptionStore owns the option buffer, the option count and the selection
// state. The closed button and the open overlay both read from the same store.
type OptionStore struct {
	alloc   Allocator
	process TextProcessor

	buf   optionText // nil when there are no options
	count int

	committed int      // selection in effect while closed
	pending   int      // highlighted row while open
	preview   OptIndex // pressed row, press feedback only
}

// NewOptionStore creates an empty store. A nil allocator uses the heap;
// a nil processor stores text unchanged.
func NewOptionStore(alloc Allocator, process TextProcessor) *OptionStore {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	return &OptionStore{alloc: alloc, process: process}
}

func (s *OptionStore) transform(text string) string {
	if s.process == nil {
		return text
	}
	return s.process(text)
}

// countOptions returns the number of options in a delimited buffer.
func countOptions(text string) int {
	return strings.Count(text, "\n") + 1
}

// SetOptions replaces the buffer with an owned copy of text and resets the
// selection. On allocation failure the store is left without options.
func (s *OptionStore) SetOptions(text string) error {
	s.release()
	s.committed, s.pending = 0, 0
	s.preview = NoIndex

	processed := s.transform(text)
	owned, err := newOwnedText(s.alloc, processed)
	if err != nil {
		dropdownLogger.Warn("set options: buffer allocation failed", "bytes", len(processed), "err", err)
		return fmt.Errorf("set options: %w", err)
	}
	s.buf = owned
	s.count = countOptions(processed)
	return nil
}

// SetOptionsStatic makes the store reference text without copying it.
// The caller keeps text alive for the lifetime of the store.
func (s *OptionStore) SetOptionsStatic(text string) {
	s.release()
	s.buf = borrowedText{s: text}
	s.count = countOptions(text)
	s.committed, s.pending = 0, 0
	s.preview = NoIndex
}

// AddOption inserts option before the option at pos, or appends it when pos
// is at or past the end (PosLast). A borrowed buffer becomes owned.
// On failure the store is unchanged.
func (s *OptionStore) AddOption(option string, pos int) error {
	if pos < 0 {
		return fmt.Errorf("add option at %d: %w", pos, ErrInvalidIndex)
	}
	old := s.Text()
	ins := s.transform(option)

	insertAt := len(old)
	if pos != PosLast {
		n := 0
		for insertAt = 0; insertAt < len(old); insertAt++ {
			if n == pos {
				break
			}
			if old[insertAt] == '\n' {
				n++
			}
		}
	}

	var lead, trail string
	if pos >= s.count && s.count > 0 {
		lead = "\n"
	}
	if pos < s.count {
		trail = "\n"
	}

	owned, err := newOwnedText(s.alloc, old[:insertAt], lead, ins, trail, old[insertAt:])
	if err != nil {
		dropdownLogger.Warn("add option: buffer allocation failed", "option", option, "err", err)
		return fmt.Errorf("add option %q: %w", option, err)
	}
	count := s.count
	s.release()
	s.buf = owned
	s.count = count + 1
	return nil
}

// Clear frees an owned buffer and leaves the store without options.
func (s *OptionStore) Clear() {
	s.release()
	s.count = 0
	s.committed, s.pending = 0, 0
	s.preview = NoIndex
}

func (s *OptionStore) release() {
	if s.buf != nil {
		s.buf.release(s.alloc)
		s.buf = nil
	}
	s.count = 0
}

// Text returns the whole `\n`-delimited buffer.
func (s *OptionStore) Text() string {
	if s.buf == nil {
		return ""
	}
	return s.buf.text()
}

// Owned reports whether the store owns its buffer.
func (s *OptionStore) Owned() bool {
	_, ok := s.buf.(ownedText)
	return ok
}

// Count returns the number of options.
func (s *OptionStore) Count() int {
	if s.count > 0 && s.buf == nil {
		dropdownLogger.Error("option count without buffer", "count", s.count)
		s.count = 0
	}
	return s.count
}

// Option returns the option at index i.
func (s *OptionStore) Option(i int) (string, bool) {
	if i < 0 || i >= s.Count() {
		return "", false
	}
	return segment(s.Text(), i), true
}

// segment returns the i-th delimited segment of text.
func segment(text string, i int) string {
	for ; i > 0; i-- {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			return ""
		}
		text = text[nl+1:]
	}
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		return text[:nl]
	}
	return text
}

// SelectedText copies the committed option into buf and NUL-terminates it.
// At most len(buf)-1 bytes are copied; ErrTruncated reports a shorter copy.
// It returns the number of bytes copied, excluding the terminator.
func (s *OptionStore) SelectedText(buf []byte) (int, error) {
	sel := s.SelectedString()
	if len(buf) == 0 {
		if sel == "" {
			return 0, nil
		}
		dropdownLogger.Warn("selected text: the buffer was too small", "capacity", 0, "need", len(sel)+1)
		return 0, ErrTruncated
	}
	n := copy(buf[:len(buf)-1], sel)
	buf[n] = 0
	if n < len(sel) {
		dropdownLogger.Warn("selected text: the buffer was too small", "capacity", len(buf), "need", len(sel)+1)
		return n, ErrTruncated
	}
	return n, nil
}

// SelectedString returns the committed option, or "" without options.
func (s *OptionStore) SelectedString() string {
	if s.Count() == 0 {
		return ""
	}
	return segment(s.Text(), s.committed)
}

// clampIndex limits i to [0, count-1].
func (s *OptionStore) clampIndex(i int) int {
	if i >= s.count {
		i = s.count - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// SetSelected sets both the committed and pending index, clamped to the
// option range. It reports whether anything changed.
func (s *OptionStore) SetSelected(i int) (bool, error) {
	if i < 0 {
		return false, fmt.Errorf("set selected %d: %w", i, ErrInvalidIndex)
	}
	i = s.clampIndex(i)
	if s.committed == i && s.pending == i {
		return false, nil
	}
	s.committed, s.pending = i, i
	return true, nil
}

// Selected returns the committed index.
func (s *OptionStore) Selected() int { return s.committed }

// Pending returns the highlighted index.
func (s *OptionStore) Pending() int { return s.pending }

// SetPending highlights row i, clamped to the option range.
func (s *OptionStore) SetPending(i int) {
	s.pending = s.clampIndex(i)
}

// MovePending moves the highlight by delta without wrapping.
// It reports whether the highlight moved.
func (s *OptionStore) MovePending(delta int) bool {
	next := s.clampIndex(s.pending + delta)
	if next == s.pending {
		return false
	}
	s.pending = next
	return true
}

// Commit makes the pending index the committed one. It reports whether the
// committed index changed.
func (s *OptionStore) Commit() bool {
	if s.pending == s.committed {
		return false
	}
	s.committed = s.pending
	return true
}

// Discard drops the pending index in favour of the committed one.
func (s *OptionStore) Discard() {
	s.pending = s.committed
}

// Preview returns the pressed row, if any.
func (s *OptionStore) Preview() OptIndex { return s.preview }

// SetPreview sets or clears the pressed row. Out-of-range rows are dropped.
func (s *OptionStore) SetPreview(i OptIndex) {
	if idx, ok := i.Get(); ok && (idx < 0 || idx >= s.count) {
		i = NoIndex
	}
	s.preview = i
}
