// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - shared state machines used across screens (for example the profile picker)
// - overlay policy (which modal is drawn and which one receives keys)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
// - home state transitions (those live in internal/home)
package core
