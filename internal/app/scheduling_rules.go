package app

import (
	"fmt"
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/config"
)

// RulesFromSettings converts configured business hours into scheduling rules.
func RulesFromSettings(settings *config.SchedulingSettings) (scheduling.Rules, error) {
	if err := settings.Validate(); err != nil {
		return scheduling.Rules{}, err
	}

	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		return scheduling.Rules{}, fmt.Errorf("failed to load timezone: %w", err)
	}
	dayStart, err := scheduling.ParseClock(settings.DayStart)
	if err != nil {
		return scheduling.Rules{}, err
	}
	dayEnd, err := scheduling.ParseClock(settings.DayEnd)
	if err != nil {
		return scheduling.Rules{}, err
	}

	rules := scheduling.Rules{
		Location:       loc,
		DayStartMinute: dayStart,
		DayEndMinute:   dayEnd,
		SlotLength:     time.Duration(settings.SlotMinutes) * time.Minute,
		MinLeadTime:    time.Duration(settings.LeadTimeMinutes) * time.Minute,
		MaxRangeDays:   settings.MaxRangeDays,
		SkipWeekends:   settings.SkipWeekends,
	}
	return rules, rules.Validate()
}
