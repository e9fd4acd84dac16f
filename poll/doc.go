// Package poll provides a cooperative retry loop: a callback invoked on
// a fixed interval until an attempt ceiling is spent or the loop is
// broken. It bridges an asynchronous readiness signal into a bounded
// callback contract without blocking the caller.
package poll
