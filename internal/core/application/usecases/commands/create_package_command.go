package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/parcel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreatePackageCommandIsNotConstructed = errors.New(
		"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
	)
	ErrClientNameIsRequired = errors.New("clientname is required")
	ErrQuantityIsInvalid    = errors.New("quantity must not be negative")
	ErrWeightIsInvalid      = errors.New("weight must not be negative")
	ErrAddressIsRequired    = errors.New("address is required")
)

// CreatePackageCommand represents an administrator registering a new
// package. The package starts unassigned; couriers claim it later via
// selection.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	clientName string
	quantity   int
	weight     float64
	address    string
	status     parcel.Status

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a package.
// Validates the data-model invariants; the caller decides the initial
// status (pending when the request carries none).
func NewCreatePackageCommand(clientName string, quantity int, weight float64, address string, status parcel.Status) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientName(clientName),
		cmd.setQuantity(quantity),
		cmd.setWeight(weight),
		cmd.setAddress(address),
		cmd.setStatus(status),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// ClientName returns the recipient's name.
func (c CreatePackageCommand) ClientName() string {
	return c.clientName
}

// Quantity returns the number of items.
func (c CreatePackageCommand) Quantity() int {
	return c.quantity
}

// Weight returns the package weight.
func (c CreatePackageCommand) Weight() float64 {
	return c.weight
}

// Address returns the delivery address.
func (c CreatePackageCommand) Address() string {
	return c.address
}

// Status returns the initial package status.
func (c CreatePackageCommand) Status() parcel.Status {
	return c.status
}

func (c *CreatePackageCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *CreatePackageCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, quantity)
	}

	c.quantity = quantity
	return nil
}

func (c *CreatePackageCommand) setWeight(weight float64) error {
	if weight < 0 {
		return fmt.Errorf("%w: got %v", ErrWeightIsInvalid, weight)
	}

	c.weight = weight
	return nil
}

func (c *CreatePackageCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreatePackageCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
