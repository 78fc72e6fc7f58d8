// Package order contains the order aggregate and its closed enumerations:
// the status state machine governing the order lifecycle, the garment kinds a
// pressing accepts, and the order items the price derives from.
//
// The transition table in status.go is the single source of truth for legal
// status moves; no other component special-cases a status.
package order
