// Package redact censors sensitive fields in arbitrary values before they
// reach a client or a log sink.
//
// A [KeySet] is built once at process start (usually with [DefaultKeySet]),
// optionally extended from configuration, and shared by the HTTP layer and
// the access logger. Matching is by exact, case-sensitive key name; the
// value of every matching key is replaced with [Redacted] at any depth of
// objects and arrays.
package redact
