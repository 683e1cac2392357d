package dropdown

import "fmt"

// Allocator provides the memory for owned option buffers and overlay records.
// Embedded targets work from a fixed heap, so every allocation may fail and
// callers must abandon the requested mutation when it does.
type Allocator interface {
	// Alloc returns a zeroed buffer of length n or ErrNoMemory.
	Alloc(n int) ([]byte, error)

	// Free returns a buffer obtained from Alloc.
	Free(buf []byte)
}

// HeapAllocator allocates from the Go heap and never fails.
type HeapAllocator struct{}

// Alloc returns a new buffer of length n.
func (HeapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("alloc %d bytes: %w", n, ErrNoMemory)
	}
	return make([]byte, n), nil
}

// Free is a no-op; the garbage collector reclaims the buffer.
func (HeapAllocator) Free([]byte) {}

// BudgetAllocator serves allocations from a fixed byte budget.
// Freed buffers return their length to the budget.
type BudgetAllocator struct {
	limit int
	used  int
}

// NewBudgetAllocator creates an allocator that can hand out at most limit bytes at once.
func NewBudgetAllocator(limit int) *BudgetAllocator {
	return &BudgetAllocator{limit: limit}
}

// Alloc returns a buffer of length n if the budget allows it.
func (a *BudgetAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 || a.used+n > a.limit {
		return nil, fmt.Errorf("alloc %d bytes (%d/%d in use): %w", n, a.used, a.limit, ErrNoMemory)
	}
	a.used += n
	return make([]byte, n), nil
}

// Free returns the buffer's length to the budget.
func (a *BudgetAllocator) Free(buf []byte) {
	a.used -= cap(buf)
	if a.used < 0 {
		a.used = 0
	}
}

// Used returns the number of bytes currently allocated.
func (a *BudgetAllocator) Used() int { return a.used }

// Remaining returns the number of bytes still available.
func (a *BudgetAllocator) Remaining() int { return a.limit - a.used }
