// Package kind classifies runtime values against a fixed taxonomy of
// categories and structural shapes. Every predicate is total: a fault
// raised during classification is contained at its origin, logged, and
// reported as a false result, so callers can rely on predicates as
// unconditional gates in front of state changes.
package kind
