package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountUnassignedPackagesQueryHandler counts the packages awaiting a
// courier.
type CountUnassignedPackagesQueryHandler struct {
	db *gorm.DB
}

// NewCountUnassignedPackagesQueryHandler creates a handler for backlog counting.
func NewCountUnassignedPackagesQueryHandler(db *gorm.DB) CountUnassignedPackagesQueryHandler {
	return CountUnassignedPackagesQueryHandler{db: db}
}

// Handle executes the count of packages with no assigned courier.
func (h CountUnassignedPackagesQueryHandler) Handle(
	ctx context.Context,
	query CountUnassignedPackagesQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM packages
		WHERE courier_id IS NULL
	`).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
