// Package scenario holds the driver routines built on top of mem: the
// call-by-value / call-by-reference / call-by-pointer swap programs, the
// sequential array-fill walk, and the salary-eligibility rules evaluation.
// These are consumers of the core API; they add no semantics of their own.
package scenario
