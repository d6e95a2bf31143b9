package queries

import (
	"context"

	"dispatch/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetDeliveryUsersQueryHandler retrieves courier accounts from the
// database.
type GetDeliveryUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryUsersQueryHandler creates a handler for courier account queries.
func NewGetDeliveryUsersQueryHandler(db *gorm.DB) GetDeliveryUsersQueryHandler {
	return GetDeliveryUsersQueryHandler{db: db}
}

// Handle executes the query to retrieve courier accounts, optionally
// restricted to active ones. Results are sorted by id.
func (h GetDeliveryUsersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryUsersQuery,
) ([]GetDeliveryUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			email,
			role,
			active
		FROM users
		WHERE role = ?
	`
	if query.ActiveOnly() {
		sql += ` AND active`
	}
	sql += `
		ORDER BY id
	`

	users := make([]GetDeliveryUsersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, user.RoleDelivery.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var account GetDeliveryUsersQueryResponse

		err = rows.Scan(
			&account.ID,
			&account.Email,
			&account.Role,
			&account.Active,
		)
		if err != nil {
			return nil, err
		}

		users = append(users, account)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
