package user

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

const (
	// ScoreUnrated marks a user that has not received any rating yet.
	ScoreUnrated = 0

	// ScoreMin is the lowest rating score a user can carry.
	ScoreMin = 1

	// ScoreMax is the highest rating score a user can carry.
	ScoreMax = 5
)

// User represents a registered platform participant: a customer, a delivery
// courier, or the pressing operator. Users are created at registration by the
// authentication collaborator and owned by the persistence store; the order
// lifecycle engine only ever reads them.
//
// User follows these invariants:
//   - Must have a valid identity and a valid role
//   - Username and display name are never empty
//   - Score is ScoreUnrated or within [ScoreMin, ScoreMax]
//   - Can only be created through the NewUser constructor
type User struct {
	// id is the unique identifier assigned by the store
	id kernel.ID

	// username is the unique login name (credential checks live elsewhere)
	username string

	// role is assigned at registration and immutable afterwards
	role Role

	// name is the display name shown on dashboards
	name string

	// phone is the contact phone number
	phone string

	// address is the default address; may be empty
	address string

	// score is the aggregate rating carried by the user
	score int

	// isConstructed ensures the user was created via NewUser
	isConstructed bool
}

// NewUser creates a User instance with validation. This is the only way to
// obtain a valid User; repositories use it when reconstructing rows.
//
// Returns a validation error if the identity, role, or score is invalid, or
// if username or name is empty.
func NewUser(id kernel.ID, username string, role Role, name, phone, address string, score int) (*User, error) {
	user := &User{
		phone:         phone,
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setUsername(username),
		user.setRole(role),
		user.setName(name),
		user.setScore(score),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.ID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the contact phone number.
func (u *User) Phone() string {
	return u.phone
}

// Address returns the default address. Empty when the user has none on file.
func (u *User) Address() string {
	return u.address
}

// Score returns the aggregate rating, or ScoreUnrated when none exists.
func (u *User) Score() int {
	return u.score
}

func (u *User) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setScore(score int) error {
	if score != ScoreUnrated && (score < ScoreMin || score > ScoreMax) {
		return errs.NewValueIsOutOfRangeError("score", score, ScoreMin, ScoreMax)
	}
	u.score = score
	return nil
}
