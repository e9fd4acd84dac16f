// Package history provides a bounded, insertion-ordered log. The log
// keeps the newest entries: once the capacity bound is reached, each
// append evicts the single oldest entry first. Capacity is mutable at
// runtime and validated as a safe integer.
package history
