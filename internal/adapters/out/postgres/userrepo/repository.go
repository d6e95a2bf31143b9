package userrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user and returns the aggregate carrying its generated
// id. An email collision yields ports.ErrEmailAlreadyTaken.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) (*user.User, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ports.ErrEmailAlreadyTaken
		}
		return nil, err
	}

	created, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(created.ID(), created)
	return created, nil
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, id uint) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by its unique email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update applies a patch to the user matching id and returns the
// updated aggregate.
func (r *GormUserRepository) Update(ctx context.Context, id uint, patch ports.UserPatch) (*user.User, error) {
	if patch.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("patch")
	}

	var updated []UserDTO
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(patchToUpdates(patch))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, ports.ErrEmailAlreadyTaken
		}
		return nil, result.Error
	}

	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, errs.NewObjectNotFoundError("userId", id)
	}

	aggregate, err := toDomain(updated[0])
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// Delete removes the user by id.
func (r *GormUserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userId", id)
	}

	return nil
}

// isUniqueViolation reports whether the error is a postgres
// unique-constraint violation. Connections run over lib/pq, so the
// driver error is a *pq.Error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}

// patchToUpdates converts a patch into the column map for GORM Updates.
func patchToUpdates(patch ports.UserPatch) map[string]any {
	updates := make(map[string]any)
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		updates["password_hash"] = *patch.PasswordHash
	}
	if patch.Role != nil {
		updates["role"] = patch.Role.String()
	}
	if patch.Active != nil {
		updates["active"] = *patch.Active
	}
	return updates
}
