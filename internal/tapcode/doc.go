// Package tapcode owns the Tap Code grid model and its text grammar.
//
// Ownership boundary:
// - 5x5 grid construction and cell lookup
// - tap sequence encode/decode
// - atomically replaceable active grid
package tapcode
