package mem

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// Ref: a checked reference handle
// ---------------------------------------------------------------------------

// Ref is a reference-like handle in one of three states:
//
//   - null: the zero value; nothing is referenced
//   - bound: references live storage at a given element offset
//   - dangling: the referenced storage has been released by its owner
//
// A Ref never owns storage. Dangling is observed lazily: release happens at
// the owner, and the ref notices the next time it is queried. Advance never
// validates its result; dereference does. Ref is a small value type and is
// passed by copy, so Ref[Ref[T]] chains compose with no special handling.
type Ref[T any] struct {
	blk    *block[T]
	offset int
}

// IsNull reports whether the ref references nothing at all.
func (r Ref[T]) IsNull() bool {
	return r.blk == nil
}

// IsDangling reports whether the referenced storage has been released.
// A null ref is not dangling; the two states are distinct.
func (r Ref[T]) IsDangling() bool {
	return r.blk != nil && r.blk.isReleased()
}

// IsBound reports whether the ref currently references live storage.
// The offset may still be out of range; only dereference checks that.
func (r Ref[T]) IsBound() bool {
	return r.blk != nil && !r.blk.isReleased()
}

// Offset returns the element offset within the backing storage.
func (r Ref[T]) Offset() int {
	return r.offset
}

// Len returns the element count of the backing storage, or 0 when the ref
// is null or dangling.
func (r Ref[T]) Len() int {
	if r.blk == nil {
		return 0
	}
	return r.blk.length()
}

// Load dereferences the ref and returns the value at target+offset.
// Fails with ErrNullDeref, ErrDangling, or ErrOutOfBounds.
func (r Ref[T]) Load() (T, error) {
	if r.blk == nil {
		var zero T
		return zero, ErrNullDeref
	}
	v, err := r.blk.get(r.offset)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("mem: load at offset %d: %w", r.offset, err)
	}
	return v, nil
}

// MustLoad is like Load but panics on failure. For callers that have
// already established the ref is bound and in range.
func (r Ref[T]) MustLoad() T {
	v, err := r.Load()
	if err != nil {
		panic("mem: MustLoad: " + err.Error())
	}
	return v
}

// Store dereferences the ref and overwrites the value at target+offset in
// place. Same failure modes as Load. This is how pass-by-reference and
// pass-by-pointer calling conventions are reproduced: callers exchange
// refs, not copies, and writes through a ref are visible to the owner.
func (r Ref[T]) Store(v T) error {
	if r.blk == nil {
		return ErrNullDeref
	}
	if err := r.blk.set(r.offset, v); err != nil {
		return fmt.Errorf("mem: store at offset %d: %w", r.offset, err)
	}
	return nil
}

// Advance returns a ref shifted by n element widths. n may be negative.
// Construction is unchecked: the result may sit outside the backing
// storage, and only a later dereference will report ErrOutOfBounds.
// Increment, decrement, and offset addition all reduce to Advance.
func (r Ref[T]) Advance(n int) Ref[T] {
	return Ref[T]{blk: r.blk, offset: r.offset + n}
}

// String describes the ref's state for diagnostics.
func (r Ref[T]) String() string {
	switch {
	case r.blk == nil:
		return "Ref(null)"
	case r.blk.isReleased():
		return fmt.Sprintf("Ref(dangling, offset=%d)", r.offset)
	default:
		return fmt.Sprintf("Ref(bound, offset=%d, len=%d)", r.offset, r.blk.length())
	}
}
