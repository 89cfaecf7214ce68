package mem

import (
	"sync"
)

// block is the backing store shared by an owner (Cell or Arena allocation)
// and every Ref derived from it. The owner is the only party that may
// release it; refs observe the released flag lazily on their next access.
type block[T any] struct {
	data     []T
	released bool
	mu       sync.RWMutex
}

func newBlock[T any](n int, fill T) *block[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = fill
	}
	return &block[T]{data: data}
}

// get reads the element at offset, validating liveness and bounds.
func (b *block[T]) get(offset int) (T, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var zero T
	if b.released {
		return zero, ErrDangling
	}
	if offset < 0 || offset >= len(b.data) {
		return zero, ErrOutOfBounds
	}
	return b.data[offset], nil
}

// set writes the element at offset, validating liveness and bounds.
func (b *block[T]) set(offset int, v T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.released {
		return ErrDangling
	}
	if offset < 0 || offset >= len(b.data) {
		return ErrOutOfBounds
	}
	b.data[offset] = v
	return nil
}

// release marks the block dead. Returns false if it was already released.
func (b *block[T]) release() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.released {
		return false
	}
	b.released = true
	b.data = nil
	return true
}

func (b *block[T]) isReleased() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.released
}

// length reports the live element count (0 once released).
func (b *block[T]) length() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// values copies out the live contents. Returns nil once released.
func (b *block[T]) values() []T {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.released {
		return nil
	}
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}
