// Package srs implements the spaced repetition scheduling core: classifying
// cards as new, due, or future; selecting and ordering cards for a study
// session; computing updated statistics after an answer; and listing cards
// due for review.
//
// Everything in this package is a pure function over snapshots supplied by
// the caller. No function performs I/O or reads the wall clock; the current
// time is always an explicit argument. This keeps the core deterministic and
// trivially safe under concurrent use.
package srs
