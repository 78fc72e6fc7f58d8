package queries

import (
	"errors"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves the user directory filtered by role.
//
// Any authenticated actor may list pressings (customers need the directory
// to place an order); the other directories are business-only.
type ListUsersQuery struct {
	actor user.Actor
	role  user.Role

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a directory query on behalf of the actor.
func NewListUsersQuery(actor user.Actor, role user.Role) (ListUsersQuery, error) {
	if err := errors.Join(
		actor.Validate(),
		role.Validate(),
	); err != nil {
		return ListUsersQuery{}, err
	}

	return ListUsersQuery{
		actor: actor,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q ListUsersQuery) Actor() user.Actor {
	return q.actor
}

// Role returns the requested directory role.
func (q ListUsersQuery) Role() user.Role {
	return q.role
}

// UserResponse is the user directory read model. The password hash never
// leaves the store through this projection.
type UserResponse struct {
	ID       int64
	Username string
	Role     string
	Name     string
	Phone    string
	Address  string
	Score    int
}
