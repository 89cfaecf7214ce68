package scenario

import (
	"errors"
	"testing"

	"github.com/mahithakrar/indirect/mem"
)

// ---------------------------------------------------------------------------
// Swap tests
// ---------------------------------------------------------------------------

func TestSwapValues(t *testing.T) {
	a, b := 5, 10

	ra, rb := SwapValues(a, b)
	if ra != 10 || rb != 5 {
		t.Errorf("SwapValues = (%d, %d), want (10, 5)", ra, rb)
	}
	// Copies were swapped; the originals are untouched.
	if a != 5 || b != 10 {
		t.Errorf("originals changed to (%d, %d)", a, b)
	}
}

func TestSwapCells(t *testing.T) {
	x := mem.NewCell(5)
	y := mem.NewCell(10)

	if err := SwapCells(x, y); err != nil {
		t.Fatalf("SwapCells failed: %v", err)
	}
	if x.Get() != 10 {
		t.Errorf("first cell = %d, want 10", x.Get())
	}
	if y.Get() != 5 {
		t.Errorf("second cell = %d, want 5", y.Get())
	}
}

func TestSwapRefs(t *testing.T) {
	x := mem.NewCell(5)
	y := mem.NewCell(10)

	if err := SwapRefs(x.Ref(), y.Ref()); err != nil {
		t.Fatalf("SwapRefs failed: %v", err)
	}
	if x.Get() != 10 || y.Get() != 5 {
		t.Errorf("cells = (%d, %d), want (10, 5)", x.Get(), y.Get())
	}
}

func TestSwapRefsNullOperand(t *testing.T) {
	x := mem.NewCell(5)

	err := SwapRefs(x.Ref(), mem.Ref[int]{})
	if !errors.Is(err, mem.ErrNullDeref) {
		t.Errorf("SwapRefs with null operand = %v, want ErrNullDeref", err)
	}
	if x.Get() != 5 {
		t.Errorf("failed swap must leave target unchanged, got %d", x.Get())
	}
}

func TestSwapRefsDanglingOperand(t *testing.T) {
	x := mem.NewCell(5)
	y := mem.NewCell(10)
	yRef := y.Ref()
	y.Release()

	err := SwapRefs(x.Ref(), yRef)
	if !errors.Is(err, mem.ErrDangling) {
		t.Errorf("SwapRefs with dangling operand = %v, want ErrDangling", err)
	}
	if x.Get() != 5 {
		t.Errorf("failed swap must leave target unchanged, got %d", x.Get())
	}
}

func TestSwapRefsArrayElements(t *testing.T) {
	a := mem.NewArena[int]()
	defer a.Teardown()

	_, ref, err := a.AllocArray(2, 0)
	if err != nil {
		t.Fatalf("AllocArray failed: %v", err)
	}
	if err := ref.Store(5); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := ref.Advance(1).Store(10); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	if err := SwapRefs(ref, ref.Advance(1)); err != nil {
		t.Fatalf("SwapRefs failed: %v", err)
	}
	if got := ref.MustLoad(); got != 10 {
		t.Errorf("element 0 = %d, want 10", got)
	}
	if got := ref.Advance(1).MustLoad(); got != 5 {
		t.Errorf("element 1 = %d, want 5", got)
	}
}
