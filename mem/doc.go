// Package mem provides memory-safe counterparts to raw pointer operations:
// owned single-slot cells, weak reference handles with explicit null and
// dangling states, and arenas for dynamic allocation of values and
// contiguous arrays.
//
// The contract mirrors raw pointer semantics with the danger contained:
// arithmetic on a Ref never fails (any offset may be constructed), while
// every dereference is checked against the current state of the backing
// storage. Releasing storage never invalidates memory out from under a
// holder; it flips derived refs into an observable dangling state instead.
package mem
