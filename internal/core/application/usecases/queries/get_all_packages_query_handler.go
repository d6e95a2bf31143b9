package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllPackagesQueryHandler retrieves the full package list from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetAllPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPackagesQueryHandler creates a handler for package listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllPackagesQueryHandler(db *gorm.DB) GetAllPackagesQueryHandler {
	return GetAllPackagesQueryHandler{db: db}
}

// Handle executes the query to retrieve all packages.
// Returns package read models sorted by id for consistent output.
func (h GetAllPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetAllPackagesQuery,
) ([]GetAllPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := make([]GetAllPackagesQueryResponse, 0)

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
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pkg GetAllPackagesQueryResponse

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
