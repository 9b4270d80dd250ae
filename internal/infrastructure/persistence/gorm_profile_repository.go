package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/persistence/models"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
	now    func() time.Time
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (profiles.ProfileRepository, error) {
	return &gormProfileRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (r *gormProfileRepository) Create(ctx context.Context, profile *profiles.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProfileModel{}
	model.FromDomain(profile)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "profile", profile.ID)
	}

	r.logger.Info("Created profile", "id", profile.ID)
	return nil
}

func (r *gormProfileRepository) GetByID(ctx context.Context, id string) (*profiles.Profile, error) {
	var model models.ProfileModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "profile", id)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) List(ctx context.Context, query *profiles.ProfileQuery) ([]*profiles.Profile, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProfileModel
	dbQuery := conn(ctx, r.db).Model(&models.ProfileModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", string(query.Status))
	}

	// SortBy and SortOrder are restricted to known columns by Validate
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	domainList := make([]*profiles.Profile, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormProfileRepository) UpdateContact(ctx context.Context, id string, update profiles.ContactUpdate, at time.Time) (*profiles.Profile, error) {
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if update.Empty() {
		return r.GetByID(ctx, id)
	}

	columns := map[string]any{"date_time_updated": at.UTC()}
	if update.FullName != nil {
		columns["full_name"] = *update.FullName
	}
	if update.Phone != nil {
		columns["phone"] = *update.Phone
	}

	if err := r.updateColumns(ctx, id, columns); err != nil {
		return nil, err
	}

	r.logger.Info("Updated profile contact", "id", id)
	return r.GetByID(ctx, id)
}

func (r *gormProfileRepository) UpdateRole(ctx context.Context, id string, role profiles.Role, at time.Time) (*profiles.Profile, error) {
	if role != profiles.RoleAdmin && role != profiles.RoleMember {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	if err := r.updateColumns(ctx, id, map[string]any{
		"role":              string(role),
		"date_time_updated": at.UTC(),
	}); err != nil {
		return nil, err
	}

	r.logger.Info("Updated profile role", "id", id, "role", role)
	return r.GetByID(ctx, id)
}

func (r *gormProfileRepository) SetRejectionReason(ctx context.Context, id, reason string, at time.Time) (*profiles.Profile, error) {
	if len(reason) > 1000 {
		return nil, fmt.Errorf("%w: rejection reason longer than 1000 characters", apperrors.ErrValidation)
	}

	if err := r.updateColumns(ctx, id, map[string]any{
		"rejection_reason":  reason,
		"date_time_updated": at.UTC(),
	}); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// updateColumns writes only the named columns so concurrent status or role
// changes on the same row are never overwritten with stale values.
func (r *gormProfileRepository) updateColumns(ctx context.Context, id string, columns map[string]any) error {
	res := conn(ctx, r.db).Model(&models.ProfileModel{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return translate(res.Error, "update", "profile", id)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: profile with ID %s", apperrors.ErrNotFound, id)
	}
	return nil
}

func (r *gormProfileRepository) TransitionStatus(ctx context.Context, id string, from, to profiles.Status) (*profiles.Profile, error) {
	if !from.CanTransition(to) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, from, to)
	}

	res := conn(ctx, r.db).Model(&models.ProfileModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":            string(to),
			"date_time_updated": r.now().UTC(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update profile status: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: profile %s is %s, expected %s", apperrors.ErrInvalidTransition, id, current.Status, from)
	}

	r.logger.Info("Profile status changed", "id", id, "from", from, "to", to)
	return r.GetByID(ctx, id)
}
