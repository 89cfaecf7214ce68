// Package functab implements a named registry of invocable handlers: the
// memory-safe analogue of a function-pointer table. Indirect calls resolve
// by identifier instead of by address, preserving runtime-selectable
// dispatch without address arithmetic.
package functab

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Errors returned by registration and lookup.
var (
	ErrDuplicateFunc = errors.New("function already registered")
	ErrUnknownFunc   = errors.New("unknown function")
)

// Handler is an invocable table entry. A handler reports its own failures
// through its error return; Invoke passes them through unchanged.
type Handler func(args ...any) (any, error)

// Table maps identifiers to handlers. Entries are immutable once
// registered and unique by identifier.
type Table struct {
	funcs map[string]Handler
	mu    sync.RWMutex
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{funcs: make(map[string]Handler)}
}

// Register adds a handler under the given identifier. Fails with
// ErrDuplicateFunc if the identifier is taken; the original entry survives.
// A nil handler is a programming error and panics.
func (t *Table) Register(id string, h Handler) error {
	if h == nil {
		panic("functab: Register with nil handler")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.funcs[id]; ok {
		return fmt.Errorf("functab: register %q: %w", id, ErrDuplicateFunc)
	}
	t.funcs[id] = h
	return nil
}

// Resolve looks up the handler for an identifier. Fails with ErrUnknownFunc
// if absent.
func (t *Table) Resolve(id string) (Handler, error) {
	t.mu.RLock()
	h, ok := t.funcs[id]
	t.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("functab: resolve %q: %w", id, ErrUnknownFunc)
	}
	return h, nil
}

// Invoke resolves the identifier and calls its handler with the given
// arguments. A resolution failure is the table's error; anything the
// handler itself returns is propagated as-is.
func (t *Table) Invoke(id string, args ...any) (any, error) {
	h, err := t.Resolve(id)
	if err != nil {
		return nil, err
	}
	return h(args...)
}

// Names returns the registered identifiers in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	names := make([]string, 0, len(t.funcs))
	for id := range t.funcs {
		names = append(names, id)
	}
	t.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Count returns the number of registered handlers.
func (t *Table) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.funcs)
}
