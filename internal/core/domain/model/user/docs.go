// Package user defines the user side of the domain model: the closed Role
// enumeration, the User entity owned by the persistence store, and the Actor
// value object describing the authenticated caller of every operation.
//
// Credential handling (password hashing, sessions) belongs to the
// authentication collaborator; this package never sees secrets.
package user
