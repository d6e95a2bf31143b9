package http

import (
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/parcel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
)

// DataResponse is the success envelope: the payload plus a human
// readable confirmation.
type DataResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// MessageResponse is the failure envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterUserRequest is the body of POST /api/user/register.
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EditUserRequest is the body of PUT /api/user/edit/:id. Absent fields
// are left unchanged.
type EditUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
}

// UserResponse is the wire representation of an account. The password
// hash is never serialized.
type UserResponse struct {
	ID     uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// LoginResponse carries the signed token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreatePackageRequest is the body of POST /api/package/new. Status is
// optional and defaults to pending.
type CreatePackageRequest struct {
	ClientName string  `json:"clientname"`
	Quantity   int     `json:"quantity"`
	Weight     float64 `json:"weight"`
	Address    string  `json:"address"`
	Status     string  `json:"status"`
}

// EditPackageRequest is the body of the package edit routes. Absent
// fields are left unchanged.
type EditPackageRequest struct {
	ClientName *string  `json:"clientname"`
	Quantity   *int     `json:"quantity"`
	Weight     *float64 `json:"weight"`
	Address    *string  `json:"address"`
	Status     *string  `json:"status"`
}

// SelectPackagesRequest is the body of PUT /api/package/:id/select/packages.
type SelectPackagesRequest struct {
	Packages []uint `json:"packages"`
}

// PackageResponse is the wire representation of a package.
type PackageResponse struct {
	ID           uint    `json:"id"`
	TrackingCode string  `json:"trackingCode"`
	ClientName   string  `json:"clientname"`
	Quantity     int     `json:"quantity"`
	Weight       float64 `json:"weight"`
	Address      string  `json:"address"`
	Status       string  `json:"status"`
	CourierID    *uint   `json:"courierId"`
}

func userToResponse(aggregate *user.User) UserResponse {
	return UserResponse{
		ID:     aggregate.ID(),
		Email:  aggregate.Email(),
		Role:   aggregate.Role().String(),
		Active: aggregate.IsActive(),
	}
}

func packageToResponse(aggregate *parcel.Package) PackageResponse {
	return PackageResponse{
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

func packageReadModelToResponse(row queries.GetAllPackagesQueryResponse) PackageResponse {
	return PackageResponse{
		ID:           row.ID,
		TrackingCode: row.TrackingCode,
		ClientName:   row.ClientName,
		Quantity:     row.Quantity,
		Weight:       row.Weight,
		Address:      row.Address,
		Status:       row.Status,
		CourierID:    row.CourierID,
	}
}

func deliveryPackageReadModelToResponse(row queries.GetDeliveryPackagesQueryResponse) PackageResponse {
	courierID := row.CourierID
	return PackageResponse{
		ID:           row.ID,
		TrackingCode: row.TrackingCode,
		ClientName:   row.ClientName,
		Quantity:     row.Quantity,
		Weight:       row.Weight,
		Address:      row.Address,
		Status:       row.Status,
		CourierID:    &courierID,
	}
}

func userReadModelToResponse(row queries.GetDeliveryUsersQueryResponse) UserResponse {
	return UserResponse{
		ID:     row.ID,
		Email:  row.Email,
		Role:   row.Role,
		Active: row.Active,
	}
}

// packagePatchFromRequest maps an edit body onto a repository patch,
// parsing the optional status string.
func packagePatchFromRequest(req EditPackageRequest) (ports.PackagePatch, error) {
	patch := ports.PackagePatch{
		ClientName: req.ClientName,
		Quantity:   req.Quantity,
		Weight:     req.Weight,
		Address:    req.Address,
	}

	if req.Status != nil {
		status, err := parcel.StatusFromString(*req.Status)
		if err != nil {
			return ports.PackagePatch{}, err
		}
		patch.Status = &status
	}

	return patch, nil
}
