// Package home holds the parent home screen state and its mutation rules.
//
// Allowed here:
// - the profile collection, selection, expense catalog and modal flags
// - pure transitions (State methods and Reduce)
//
// Not allowed here:
// - rendering, key handling, storage access or logging
package home
