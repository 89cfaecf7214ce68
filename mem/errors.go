package mem

import (
	"errors"
)

// Errors returned by dereference and arena operations. All of them are
// recoverable by the caller; nothing in this package terminates the
// process on a bad access.
var (
	ErrNullDeref     = errors.New("null dereference")
	ErrDangling      = errors.New("dangling reference")
	ErrOutOfBounds   = errors.New("offset out of bounds")
	ErrInvalidSize   = errors.New("invalid allocation size")
	ErrDoubleRelease = errors.New("allocation already released")
)

// Errors returned when decoding an arena snapshot.
var (
	ErrInvalidMagic    = errors.New("invalid snapshot magic")
	ErrVersionMismatch = errors.New("snapshot version mismatch")
	ErrCorruptSnapshot = errors.New("corrupt snapshot data")
)
