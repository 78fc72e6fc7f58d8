package queries

import (
	"context"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListUsersQueryHandler reads the user directory.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for directory listings.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the directory listing.
// Returns errs.AccessForbiddenError when a non-business actor asks for a
// directory other than the pressings one.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Actor().Role() != user.Business && query.Role() != user.Business {
		return nil, errs.NewAccessForbiddenError("list users")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			role,
			name,
			phone,
			address,
			score
		FROM users
		WHERE role = ?
		ORDER BY id
	`, query.Role().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserResponse, 0)
	for rows.Next() {
		var resp UserResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.Username,
			&resp.Role,
			&resp.Name,
			&resp.Phone,
			&resp.Address,
			&resp.Score,
		); err != nil {
			return nil, err
		}
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
