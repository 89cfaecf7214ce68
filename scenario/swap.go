package scenario

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/mahithakrar/indirect/mem"
)

var log = commonlog.GetLogger("indirect.scenario")

// ---------------------------------------------------------------------------
// Swap programs: by value, by reference, by pointer
// ---------------------------------------------------------------------------

// SwapValues is the call-by-value variant: it swaps copies and returns the
// swapped pair. The caller's own storage is untouched.
func SwapValues(a, b int) (int, int) {
	return b, a
}

// SwapCells exchanges the contents of two cells through refs taken here:
// the call-by-reference variant, where the callee reaches back into the
// caller's storage.
func SwapCells(x, y *mem.Cell[int]) error {
	return SwapRefs(x.Ref(), y.Ref())
}

// SwapRefs exchanges the values behind two caller-supplied refs: the
// call-by-pointer variant. Fails if either ref is null, dangling, or out
// of range, leaving both targets unchanged.
func SwapRefs(p, q mem.Ref[int]) error {
	pv, err := p.Load()
	if err != nil {
		return fmt.Errorf("scenario: swap first operand: %w", err)
	}
	qv, err := q.Load()
	if err != nil {
		return fmt.Errorf("scenario: swap second operand: %w", err)
	}

	if err := p.Store(qv); err != nil {
		return fmt.Errorf("scenario: swap first operand: %w", err)
	}
	if err := q.Store(pv); err != nil {
		// First store already landed; put the original value back so a
		// failed swap leaves both targets unchanged.
		_ = p.Store(pv)
		return fmt.Errorf("scenario: swap second operand: %w", err)
	}

	log.Debugf("swapped %d <-> %d", pv, qv)
	return nil
}
