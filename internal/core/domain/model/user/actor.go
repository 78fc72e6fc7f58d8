package user

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor was not created
	// through the NewActor constructor.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")
)

// Actor is the authenticated caller context attached to every operation:
// the user's identity plus their role. The authentication collaborator
// produces actors; the domain never performs credential checks.
//
// Actor is an immutable value object. The zero value is invalid.
type Actor struct {
	id    kernel.ID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from an authenticated identity and role.
// Both must be valid; the constructor rejects zero identities and roles
// outside the closed enumeration.
func NewActor(id kernel.ID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}

	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the actor's user identity.
func (a Actor) ID() kernel.ID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
