package parcel

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not created
	// through NewPackage or RestorePackage. This ensures all packages are validated.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")
)

// Package is the aggregate root for a deliverable package.
//
// Invariants:
//   - clientname and address are required
//   - quantity is a non-negative integer
//   - weight is non-negative
//   - status is one of the known statuses
//   - the courier reference, once set via Assign, names an existing user;
//     existence is enforced by the select use case before assignment
//
// A package is created unassigned (no courier) and becomes assigned when
// a courier selects it. Reassignment is allowed; there is no operation
// that returns an assigned package to the unassigned state.
type Package struct {
	id           uint
	trackingCode kernel.TrackingCode
	clientName   string
	quantity     int
	weight       float64
	address      string
	status       Status
	courierID    *uint

	isConstructed bool
}

// NewPackage creates a new unassigned Package with a fresh tracking code.
// The id stays zero until the package is persisted.
func NewPackage(clientName string, quantity int, weight float64, address string, status Status) (*Package, error) {
	p := &Package{
		trackingCode:  kernel.NewTrackingCode(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setClientName(clientName),
		p.setQuantity(quantity),
		p.setWeight(weight),
		p.setAddress(address),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a Package from persistence, including its
// assigned courier if any. All invariants are re-checked on the way in.
func RestorePackage(
	id uint,
	trackingCode kernel.TrackingCode,
	clientName string,
	quantity int,
	weight float64,
	address string,
	status Status,
	courierID *uint,
) (*Package, error) {
	p := &Package{
		id:            id,
		courierID:     courierID,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTrackingCode(trackingCode),
		p.setClientName(clientName),
		p.setQuantity(quantity),
		p.setWeight(weight),
		p.setAddress(address),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Package was constructed through a factory function.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}

	return nil
}

// IsEqual compares two packages by their identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id == other.id
}

// ID returns the package's numeric identifier (zero until persisted).
func (p *Package) ID() uint {
	return p.id
}

// TrackingCode returns the package's client-facing tracking code.
func (p *Package) TrackingCode() kernel.TrackingCode {
	return p.trackingCode
}

// ClientName returns the recipient's name.
func (p *Package) ClientName() string {
	return p.clientName
}

// Quantity returns the number of items in the package.
func (p *Package) Quantity() int {
	return p.quantity
}

// Weight returns the package weight.
func (p *Package) Weight() float64 {
	return p.weight
}

// Address returns the delivery address.
func (p *Package) Address() string {
	return p.address
}

// Status returns the package's current status.
func (p *Package) Status() Status {
	return p.status
}

// Courier returns the assigned courier's user id, nil when unassigned.
func (p *Package) Courier() *uint {
	return p.courierID
}

// Assign sets the given courier as the package's owner. Reassignment of
// an already assigned package is allowed; the last assignment wins.
func (p *Package) Assign(courierID uint) error {
	if courierID == 0 {
		return errs.NewValueIsRequiredError("courierId")
	}

	p.courierID = &courierID
	return nil
}

func (p *Package) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}
	p.trackingCode = trackingCode
	return nil
}

func (p *Package) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientname")
	}
	p.clientName = clientName
	return nil
}

func (p *Package) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Package) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%v is negative", weight))
	}
	p.weight = weight
	return nil
}

func (p *Package) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	p.address = address
	return nil
}

func (p *Package) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
