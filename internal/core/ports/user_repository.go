package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
)

// UserRepository defines the read contract for user entities. User accounts
// are created and mutated by the authentication collaborator; the order
// domain only resolves and lists them.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// GetAllByRole retrieves every user holding the given role.
	GetAllByRole(ctx context.Context, role user.Role) ([]*user.User, error)
}
