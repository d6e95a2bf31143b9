package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveryPackagesQueryHandler retrieves the packages assigned to a
// single courier from the database.
type GetDeliveryPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryPackagesQueryHandler creates a handler for courier workload queries.
func NewGetDeliveryPackagesQueryHandler(db *gorm.DB) GetDeliveryPackagesQueryHandler {
	return GetDeliveryPackagesQueryHandler{db: db}
}

// Handle executes the query to retrieve the courier's packages.
// Returns an empty slice when the courier has none; callers decide how
// to present that.
func (h GetDeliveryPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPackagesQuery,
) ([]GetDeliveryPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := make([]GetDeliveryPackagesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			client_name,
			quantity,
			weight,
			address,
			status,
			courier_id
		FROM packages
		WHERE courier_id = ?
		ORDER BY id
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pkg GetDeliveryPackagesQueryResponse

		err = rows.Scan(
			&pkg.ID,
			&pkg.TrackingCode,
			&pkg.ClientName,
			&pkg.Quantity,
			&pkg.Weight,
			&pkg.Address,
			&pkg.Status,
			&pkg.CourierID,
		)
		if err != nil {
			return nil, err
		}

		packages = append(packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
