package mem

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Arena: explicit-ownership allocator
// ---------------------------------------------------------------------------

// Handle identifies one allocation within its arena. Handles are opaque,
// unique per arena, and never reused.
type Handle uint32

// Arena owns dynamic allocations: single values and contiguous arrays of
// length >= 1. The arena is the sole owner of every block it allocates;
// the refs it hands out are weak. Releasing an allocation (or tearing the
// arena down) flips all refs derived from it to dangling.
//
// Each arena is independent: there is no shared allocator state between
// instances. A per-arena lock guards the allocation table.
type Arena[T any] struct {
	id     string
	allocs map[Handle]*block[T]
	mu     sync.RWMutex
	nextID atomic.Uint32
}

// NewArena creates an empty arena with a fresh identity.
func NewArena[T any]() *Arena[T] {
	a := &Arena[T]{
		id:     "arena_" + uuid.New().String(),
		allocs: make(map[Handle]*block[T]),
	}
	// Start handles at 1 (0 could be confused with an uninitialized Handle)
	a.nextID.Store(0)
	return a
}

// ID returns the arena's unique identity.
func (a *Arena[T]) ID() string {
	return a.id
}

// AllocOne reserves a length-1 block holding the initial value. Returns the
// owning handle (for later Release) and a weak ref bound at offset 0.
func (a *Arena[T]) AllocOne(initial T) (Handle, Ref[T]) {
	h, ref, err := a.AllocArray(1, initial)
	if err != nil {
		// Length 1 can never fail size validation.
		panic("mem: AllocOne: " + err.Error())
	}
	return h, ref
}

// AllocArray reserves a contiguous block of n elements, each initialized to
// fill. Fails with ErrInvalidSize when n < 1. The returned ref is bound at
// offset 0; Advance may walk it across the whole block.
func (a *Arena[T]) AllocArray(n int, fill T) (Handle, Ref[T], error) {
	if n < 1 {
		return 0, Ref[T]{}, fmt.Errorf("mem: alloc %d elements: %w", n, ErrInvalidSize)
	}

	h := Handle(a.nextID.Add(1))
	blk := newBlock(n, fill)

	a.mu.Lock()
	a.allocs[h] = blk
	a.mu.Unlock()

	return h, Ref[T]{blk: blk}, nil
}

// Release frees the allocation identified by h. Every ref derived from it
// reports IsDangling from now on. Releasing a handle twice (or a handle
// this arena never issued) fails with ErrDoubleRelease; the first release's
// effects are unchanged.
func (a *Arena[T]) Release(h Handle) error {
	a.mu.Lock()
	blk, ok := a.allocs[h]
	if ok {
		delete(a.allocs, h)
	}
	a.mu.Unlock()

	if !ok {
		return fmt.Errorf("mem: release handle %d: %w", h, ErrDoubleRelease)
	}
	blk.release()
	return nil
}

// Teardown releases every outstanding allocation. Called at the end of the
// arena's lifetime; safe with zero allocations and safe to call again.
func (a *Arena[T]) Teardown() {
	a.mu.Lock()
	blocks := make([]*block[T], 0, len(a.allocs))
	for h, blk := range a.allocs {
		blocks = append(blocks, blk)
		delete(a.allocs, h)
	}
	a.mu.Unlock()

	for _, blk := range blocks {
		blk.release()
	}
}

// Live returns the number of outstanding allocations.
func (a *Arena[T]) Live() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.allocs)
}

// Ref returns a fresh weak ref bound at offset 0 of the given allocation,
// or a null ref when the handle is unknown or already released.
func (a *Arena[T]) Ref(h Handle) Ref[T] {
	a.mu.RLock()
	blk := a.allocs[h]
	a.mu.RUnlock()

	if blk == nil {
		return Ref[T]{}
	}
	return Ref[T]{blk: blk}
}
