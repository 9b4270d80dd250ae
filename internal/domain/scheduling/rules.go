package scheduling

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange indicates the range end precedes its start.
	ErrInvalidRange = errors.New("scheduling: end date is before start date")

	// ErrRangeTooLarge indicates the range spans more days than Rules.MaxRangeDays.
	ErrRangeTooLarge = errors.New("scheduling: date range too large")

	// ErrInvalidRules indicates inconsistent business-hour rules.
	ErrInvalidRules = errors.New("scheduling: invalid rules")

	// ErrInvalidSlot indicates a requested start is not a bookable slot boundary.
	ErrInvalidSlot = errors.New("scheduling: not a bookable slot")
)

// Rules describe when consultations may be booked.
type Rules struct {
	Location       *time.Location
	DayStartMinute int // minutes after local midnight
	DayEndMinute   int
	SlotLength     time.Duration
	MinLeadTime    time.Duration
	MaxRangeDays   int
	SkipWeekends   bool
}

// DefaultRules are 30-minute weekday slots from 09:00 to 17:00 Pacific time.
func DefaultRules() Rules {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		loc = time.UTC
	}
	return Rules{
		Location:       loc,
		DayStartMinute: 9 * 60,
		DayEndMinute:   17 * 60,
		SlotLength:     30 * time.Minute,
		MaxRangeDays:   31,
		SkipWeekends:   true,
	}
}

// Validate checks that the rules can produce slots.
func (r Rules) Validate() error {
	switch {
	case r.Location == nil:
		return fmt.Errorf("%w: location is required", ErrInvalidRules)
	case r.SlotLength <= 0 || r.SlotLength%time.Minute != 0:
		return fmt.Errorf("%w: slot length must be a positive whole number of minutes", ErrInvalidRules)
	case r.DayStartMinute < 0 || r.DayEndMinute > 24*60:
		return fmt.Errorf("%w: business hours must lie within one day", ErrInvalidRules)
	case r.DayEndMinute <= r.DayStartMinute:
		return fmt.Errorf("%w: day end must be after day start", ErrInvalidRules)
	case r.MinLeadTime < 0:
		return fmt.Errorf("%w: lead time must not be negative", ErrInvalidRules)
	case r.MaxRangeDays < 1:
		return fmt.Errorf("%w: max range must be at least one day", ErrInvalidRules)
	}
	return nil
}

// ParseClock converts "HH:MM" into minutes after midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (r Rules) slotMinutes() int {
	return int(r.SlotLength / time.Minute)
}

func (r Rules) isBusinessDay(day time.Time) bool {
	if !r.SkipWeekends {
		return true
	}
	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CheckAligned verifies that start is the beginning of a slot GenerateSlots
// could offer, ignoring busy time and the current clock.
func (r Rules) CheckAligned(start time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}

	local := start.In(r.Location)
	if !r.isBusinessDay(local) {
		return fmt.Errorf("%w: %s is not a business day", ErrInvalidSlot, local.Weekday())
	}
	if local.Second() != 0 || local.Nanosecond() != 0 {
		return fmt.Errorf("%w: start must be on a whole minute", ErrInvalidSlot)
	}

	minute := local.Hour()*60 + local.Minute()
	if minute < r.DayStartMinute || minute+r.slotMinutes() > r.DayEndMinute {
		return fmt.Errorf("%w: %s is outside business hours", ErrInvalidSlot, local.Format("15:04"))
	}
	if (minute-r.DayStartMinute)%r.slotMinutes() != 0 {
		return fmt.Errorf("%w: %s is not on the %d-minute grid", ErrInvalidSlot, local.Format("15:04"), r.slotMinutes())
	}
	return nil
}

// SlotAt returns the slot beginning at start.
func (r Rules) SlotAt(start time.Time) Interval {
	return Interval{Start: start, End: start.Add(r.SlotLength)}
}
