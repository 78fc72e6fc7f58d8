// Package userrepo provides the read-side repository for user records.
// Accounts are created and mutated by the authentication collaborator; this
// package only resolves and lists them for the order domain.
package userrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
)

// UserDTO represents the database structure of a user account.
// The password hash column is owned by the authentication collaborator and
// never crosses into the domain.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(16);index;not null"`
	Name         string `gorm:"not null"`
	Phone        string `gorm:"not null"`
	Address      string
	Score        int `gorm:"not null;default:0"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// toDomain converts a database row to a user entity.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, dto.Username, role, dto.Name, dto.Phone, dto.Address, dto.Score)
}
