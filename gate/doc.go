// Package gate applies validate-or-ignore policy to named fields. Each
// accepted write lands in a bounded audit trail, and a polling Watcher
// bridges an asynchronous readiness signal into a one-shot hook.
package gate
