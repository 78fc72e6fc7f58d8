// Package services provides domain services that implement business rules
// spanning multiple entities of the laundry platform. It contains logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AccessPolicy: a domain service deciding which actors may perform
//     which operations on orders
//   - Summarize: a pure aggregation over order snapshots producing the
//     business dashboard figures
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
