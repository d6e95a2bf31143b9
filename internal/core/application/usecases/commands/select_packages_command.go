package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrSelectPackagesCommandIsNotConstructed = errors.New(
		"SelectPackagesCommand must be created via NewSelectPackagesCommand constructor",
	)
	ErrUserIDIsRequired      = errors.New("user id is required")
	ErrPackageIDsAreRequired = errors.New("at least one package id is required")
	ErrPackageIDIsInvalid    = errors.New("package id must be greater than 0")
)

// SelectPackagesCommand represents a courier claiming a batch of
// packages. The operation is all-or-nothing: if any requested id does
// not exist, nothing is assigned.
//
// Example:
//
//	cmd, err := NewSelectPackagesCommand(7, []uint{3, 4})
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type SelectPackagesCommand struct { //nolint:recvcheck //using for validation
	userID     uint
	packageIDs []uint

	guard guard.ConstructorGuard
}

// NewSelectPackagesCommand creates a command for a courier to claim the
// listed packages. Duplicate ids are collapsed so the existence check
// compares distinct ids only.
func NewSelectPackagesCommand(userID uint, packageIDs []uint) (SelectPackagesCommand, error) {
	cmd := SelectPackagesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPackageIDs(packageIDs),
	); err != nil {
		return SelectPackagesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectPackagesCommand) Validate() error {
	return c.guard.Validate(ErrSelectPackagesCommandIsNotConstructed)
}

// UserID returns the claiming courier's user id.
func (c SelectPackagesCommand) UserID() uint {
	return c.userID
}

// PackageIDs returns the distinct package ids to claim.
func (c SelectPackagesCommand) PackageIDs() []uint {
	return c.packageIDs
}

func (c *SelectPackagesCommand) setUserID(userID uint) error {
	if userID == 0 {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *SelectPackagesCommand) setPackageIDs(packageIDs []uint) error {
	if len(packageIDs) == 0 {
		return ErrPackageIDsAreRequired
	}

	seen := make(map[uint]struct{}, len(packageIDs))
	distinct := make([]uint, 0, len(packageIDs))
	for _, id := range packageIDs {
		if id == 0 {
			return ErrPackageIDIsInvalid
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	c.packageIDs = distinct
	return nil
}
