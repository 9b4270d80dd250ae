package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/persistence/models"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

type gormBookingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBookingRepository creates a new GORM-based BookingRepository implementation
func NewGormBookingRepository(db *gorm.DB, logger logger.Logger) (bookings.BookingRepository, error) {
	return &gormBookingRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *bookings.Booking) error {
	if err := booking.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookingModel{}
	model.FromDomain(booking)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "create", "booking", booking.ID)
	}

	r.logger.Info("Created booking", "id", booking.ID, "profile_id", booking.ProfileID, "start", booking.StartTime)
	return nil
}

func (r *gormBookingRepository) GetByID(ctx context.Context, id string) (*bookings.Booking, error) {
	var model models.BookingModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "booking", id)
	}
	return model.ToDomain(), nil
}

func (r *gormBookingRepository) ListByProfile(ctx context.Context, profileID string) ([]*bookings.Booking, error) {
	var modelList []*models.BookingModel
	err := conn(ctx, r.db).
		Where("profile_id = ?", profileID).
		Order("start_time desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return toBookings(modelList), nil
}

func (r *gormBookingRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*bookings.Booking, error) {
	var modelList []*models.BookingModel
	err := conn(ctx, r.db).
		Where("status = ? AND start_time < ? AND end_time > ?", string(bookings.StatusScheduled), to.UTC(), from.UTC()).
		Order("start_time asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled bookings: %w", err)
	}
	return toBookings(modelList), nil
}

func (r *gormBookingRepository) UpdateStatus(ctx context.Context, id string, status bookings.Status) error {
	res := conn(ctx, r.db).Model(&models.BookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("failed to update booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: booking with ID %s", apperrors.ErrNotFound, id)
	}

	r.logger.Info("Updated booking status", "id", id, "status", status)
	return nil
}

func (r *gormBookingRepository) CompleteEndedBefore(ctx context.Context, t time.Time) (int64, error) {
	res := conn(ctx, r.db).Model(&models.BookingModel{}).
		Where("status = ? AND end_time <= ?", string(bookings.StatusScheduled), t.UTC()).
		Update("status", string(bookings.StatusCompleted))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to complete bookings: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func toBookings(modelList []*models.BookingModel) []*bookings.Booking {
	domainList := make([]*bookings.Booking, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
