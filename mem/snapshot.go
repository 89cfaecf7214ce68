package mem

import (
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// ---------------------------------------------------------------------------
// Snapshot format
// ---------------------------------------------------------------------------

// SnapshotMagic identifies arena snapshot bytes.
const SnapshotMagic = "INDR"

// Snapshot format version
// v1: initial format (arena id + handle/values table)
const SnapshotVersion uint32 = 1

// cborEncMode uses canonical options so identical arena contents encode to
// identical bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("mem: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// snapshotAlloc is one live allocation in a snapshot.
type snapshotAlloc[T any] struct {
	Handle uint32 `cbor:"1,keyasint"`
	Values []T    `cbor:"2,keyasint"`
}

// snapshotImage is the top-level snapshot document.
type snapshotImage[T any] struct {
	Magic   string             `cbor:"1,keyasint"`
	Version uint32             `cbor:"2,keyasint"`
	ArenaID string             `cbor:"3,keyasint"`
	Allocs  []snapshotAlloc[T] `cbor:"4,keyasint"`
}

// ---------------------------------------------------------------------------
// Snapshot / Restore
// ---------------------------------------------------------------------------

// Snapshot encodes the arena's live allocations to CBOR bytes. Released
// allocations are not recorded. The element type T must be representable
// in CBOR. The bytes stay in memory; what the caller does with them is the
// caller's business.
func (a *Arena[T]) Snapshot() ([]byte, error) {
	a.mu.RLock()
	img := snapshotImage[T]{
		Magic:   SnapshotMagic,
		Version: SnapshotVersion,
		ArenaID: a.id,
		Allocs:  make([]snapshotAlloc[T], 0, len(a.allocs)),
	}
	for h, blk := range a.allocs {
		img.Allocs = append(img.Allocs, snapshotAlloc[T]{
			Handle: uint32(h),
			Values: blk.values(),
		})
	}
	a.mu.RUnlock()

	// Deterministic allocation order regardless of map iteration.
	sort.Slice(img.Allocs, func(i, j int) bool {
		return img.Allocs[i].Handle < img.Allocs[j].Handle
	})

	data, err := cborEncMode.Marshal(&img)
	if err != nil {
		return nil, fmt.Errorf("mem: encode snapshot: %w", err)
	}
	return data, nil
}

// RestoreArena builds a fresh arena from snapshot bytes. The restored arena
// has a new identity and issues new handles, in ascending order of the
// snapshot's handles, so relative allocation order survives the round trip.
// Fails with ErrInvalidMagic, ErrVersionMismatch, or ErrCorruptSnapshot.
func RestoreArena[T any](data []byte) (*Arena[T], error) {
	var img snapshotImage[T]
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("mem: decode snapshot: %w", ErrCorruptSnapshot)
	}
	if img.Magic != SnapshotMagic {
		return nil, ErrInvalidMagic
	}
	if img.Version != SnapshotVersion {
		return nil, fmt.Errorf("mem: snapshot version %d, want %d: %w",
			img.Version, SnapshotVersion, ErrVersionMismatch)
	}

	a := NewArena[T]()
	for _, alloc := range img.Allocs {
		if len(alloc.Values) == 0 {
			return nil, fmt.Errorf("mem: empty allocation %d: %w",
				alloc.Handle, ErrCorruptSnapshot)
		}
		var zero T
		h, ref, err := a.AllocArray(len(alloc.Values), zero)
		if err != nil {
			return nil, fmt.Errorf("mem: restore allocation %d: %w", alloc.Handle, err)
		}
		for i, v := range alloc.Values {
			if err := ref.Advance(i).Store(v); err != nil {
				return nil, fmt.Errorf("mem: restore allocation %d: %w", h, err)
			}
		}
	}
	return a, nil
}
