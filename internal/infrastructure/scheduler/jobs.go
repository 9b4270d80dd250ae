package scheduler

import (
	"context"
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// BookingCompletionJobName identifies the job marking past consultations completed.
const BookingCompletionJobName = "complete-past-bookings"

// BookingCompletionJob returns a job that marks every scheduled booking that
// has ended as completed.
func BookingCompletionJob(bookingService bookings.BookingService, logger logger.Logger, now func() time.Time) JobFunc {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context) error {
		n, err := bookingService.CompletePast(ctx, now())
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Info("Completed past bookings", "count", n)
		}
		return nil
	}
}
