// Package diag owns the shared diagnostic logger for the library.
// It is configured once from GUARDRAIL_* environment variables and can
// mirror output to a debug log file for post-mortem inspection.
package diag
