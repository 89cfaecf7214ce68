package scenario

import (
	"fmt"

	"github.com/mahithakrar/indirect/mem"
)

// FillSequence allocates an n-element array in the arena and writes the
// arithmetic progression start, start+step, ... into it by walking a ref
// with Advance. Returns the allocation handle (the caller owns the release)
// and the values read back through the same walk.
func FillSequence(a *mem.Arena[int], n, start, step int) (mem.Handle, []int, error) {
	h, ref, err := a.AllocArray(n, 0)
	if err != nil {
		return 0, nil, fmt.Errorf("scenario: fill sequence: %w", err)
	}

	for i := 0; i < n; i++ {
		if err := ref.Advance(i).Store(start + i*step); err != nil {
			return h, nil, fmt.Errorf("scenario: fill element %d: %w", i, err)
		}
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := ref.Advance(i).Load()
		if err != nil {
			return h, nil, fmt.Errorf("scenario: read element %d: %w", i, err)
		}
		out[i] = v
	}

	log.Debugf("filled %d elements in %s", n, a.ID())
	return h, out, nil
}
