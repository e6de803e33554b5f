// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (popup overlay compositor, rows)
//
// Not allowed here:
// - key handling, home state transitions or screen policy
package widgets
