package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// SchedulingSettings holds the business-hours rules used to offer consultation slots.
type SchedulingSettings struct {
	Timezone        string `mapstructure:"timezone" validate:"required"`
	DayStart        string `mapstructure:"day_start" validate:"required,datetime=15:04"`
	DayEnd          string `mapstructure:"day_end" validate:"required,datetime=15:04"`
	SlotMinutes     int    `mapstructure:"slot_minutes" validate:"required,min=5,max=240"`
	LeadTimeMinutes int    `mapstructure:"lead_time_minutes" validate:"gte=0"`
	MaxRangeDays    int    `mapstructure:"max_range_days" validate:"required,min=1,max=366"`
	SkipWeekends    bool   `mapstructure:"skip_weekends"`
}

// Validate checks the scheduling settings
func (s *SchedulingSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SchedulingSettings: %w", err)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", s.Timezone, err)
	}
	start, _ := time.Parse("15:04", s.DayStart)
	end, _ := time.Parse("15:04", s.DayEnd)
	if !end.After(start) {
		return fmt.Errorf("day_end must be after day_start")
	}
	return nil
}
