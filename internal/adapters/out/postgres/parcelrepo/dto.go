// Package parcelrepo provides the GORM-backed persistence adapter for
// package aggregates, including the mapping between domain entities and
// their database representation.
package parcelrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/parcel"
)

// PackageDTO represents the database row for a package aggregate.
// The courier reference is nullable: NULL means unassigned.
type PackageDTO struct {
	ID           uint   `gorm:"primaryKey"`
	TrackingCode string `gorm:"type:uuid;uniqueIndex"`
	ClientName   string `gorm:"not null"`
	Quantity     int
	Weight       float64
	Address      string `gorm:"not null"`
	Status       string `gorm:"index"`
	CourierID    *uint  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts a package aggregate to its database representation.
func fromDomain(aggregate *parcel.Package) PackageDTO {
	return PackageDTO{
		ID:           aggregate.ID(),
		TrackingCode: aggregate.TrackingCode().String(),
		ClientName:   aggregate.ClientName(),
		Quantity:     aggregate.Quantity(),
		Weight:       aggregate.Weight(),
		Address:      aggregate.Address(),
		Status:       aggregate.Status().String(),
		CourierID:    aggregate.Courier(),
	}
}

// toDomain reconstructs a package aggregate from its database row.
func toDomain(dto PackageDTO) (*parcel.Package, error) {
	trackingCode, err := kernel.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestorePackage(
		dto.ID,
		trackingCode,
		dto.ClientName,
		dto.Quantity,
		dto.Weight,
		dto.Address,
		status,
		dto.CourierID,
	)
}
