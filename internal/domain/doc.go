// Package domain defines the core business entities of the application:
// users, mnemonics, and the per-user review statistics that drive the
// spaced repetition schedule.
package domain
