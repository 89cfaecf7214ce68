package mem

// ---------------------------------------------------------------------------
// Cell: a single-slot owned binding
// ---------------------------------------------------------------------------

// Cell is a variable with an identity: one slot holding a value of type T,
// owned by its creator. Ref hands out weak handles to the slot; Release ends
// the cell's life and flips every derived handle to dangling.
type Cell[T any] struct {
	blk *block[T]
}

// NewCell creates a cell holding the given initial value. Always succeeds.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{blk: newBlock(1, v)}
}

// Get returns the current value. The caller owns the cell, so there is no
// failure mode; Get panics if called after Release, which is an owner-side
// bug, not a recoverable condition.
func (c *Cell[T]) Get() T {
	v, err := c.blk.get(0)
	if err != nil {
		panic("mem: Cell.Get after Release")
	}
	return v
}

// Set replaces the current value. Panics after Release, like Get.
func (c *Cell[T]) Set(v T) {
	if err := c.blk.set(0, v); err != nil {
		panic("mem: Cell.Set after Release")
	}
}

// Ref returns a weak handle bound to this cell at offset 0. The handle is
// valid exactly as long as the cell is alive and dangles afterward.
func (c *Cell[T]) Ref() Ref[T] {
	return Ref[T]{blk: c.blk}
}

// Release ends the cell's lifetime. Every Ref previously taken reports
// IsDangling from now on. Releasing twice is a no-op.
func (c *Cell[T]) Release() {
	c.blk.release()
}
