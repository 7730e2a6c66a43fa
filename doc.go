// Package swego provides a collection of small utility packages: string
// manipulation helpers, case-insensitive maps, and callback event
// registries with owner-only invocation rights.
//
// This module contains the following packages:
//
// EVENTS:
//
//   - event: Ordered callback registries in two flavors, a plain
//     single-goroutine Event and a mutex-guarded ConcurrentEvent. Only the
//     owner holding a registry's Trigger can fire it; all other code can
//     merely subscribe and unsubscribe handlers. Optional Prometheus
//     instrumentation per registry.
//
// STRINGS & MAPS:
//
//   - stringutil: String helpers beyond the standard library, including
//     option-driven splitting, comparisons with selectable case
//     sensitivity, title and slug casing, and symmetric XOR obfuscation
//   - cimap: Case-insensitive string-keyed generic maps, plain and
//     thread-safe, preserving the first-seen casing of each key
//
// META:
//
//   - version: Library version constants and query helpers
//
// All packages can be used independently and carry no dependencies on one
// another.
package swego
