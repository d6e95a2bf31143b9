// Package userrepo provides the GORM-backed persistence adapter for
// user aggregates.
package userrepo

import (
	"time"

	"dispatch/internal/core/domain/model/user"
)

// UserDTO represents the database row for a user aggregate.
type UserDTO struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"index;not null"`
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Active:       aggregate.IsActive(),
	}
}

// toDomain reconstructs a user aggregate from its database row.
func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(dto.ID, dto.Email, dto.PasswordHash, role, dto.Active)
}
