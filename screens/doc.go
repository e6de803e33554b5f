// Package screens contains the parent home screen and the modals drawn on
// top of it.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (home, profile manager, editors, dialogs)
// - mapping key presses to home actions, modal-specific presentation
//
// Not allowed here:
// - home state transitions (internal/home) and key registry ownership (core)
// - low-level widget/layout primitives
package screens
