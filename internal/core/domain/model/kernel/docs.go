// Package kernel contains shared value objects used across the domain model:
// entity identifiers, monetary amounts, and the pickup/delivery time window.
//
// All types in this package are immutable value objects. Types with non-trivial
// invariants must be created through their constructor functions; zero values
// fail Validate.
package kernel
