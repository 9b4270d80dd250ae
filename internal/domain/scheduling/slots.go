package scheduling

import (
	"fmt"
	"time"
)

// SlotRequest is the input to GenerateSlots. From and To are calendar dates
// (inclusive): only their year, month and day are used, and those days are
// laid out in Rules.Location.
type SlotRequest struct {
	From time.Time
	To   time.Time
	Busy []Interval
	Now  time.Time
}

// GenerateSlots returns the free slots of req in ascending order, in UTC.
func GenerateSlots(req SlotRequest, rules Rules) ([]Interval, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	if err := CheckRange(req.From, req.To, rules); err != nil {
		return nil, err
	}
	firstDay := dateIn(req.From, rules.Location)
	lastDay := dateIn(req.To, rules.Location)

	busy := MergeIntervals(req.Busy)
	earliest := req.Now.Add(rules.MinLeadTime)

	slots := make([]Interval, 0)
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if !rules.isBusinessDay(day) {
			continue
		}

		y, m, d := day.Date()
		open := time.Date(y, m, d, 0, rules.DayStartMinute, 0, 0, rules.Location)
		closing := time.Date(y, m, d, 0, rules.DayEndMinute, 0, 0, rules.Location)

		for start := open; !start.Add(rules.SlotLength).After(closing); start = start.Add(rules.SlotLength) {
			if start.Before(earliest) {
				continue
			}
			slot := rules.SlotAt(start)
			if overlapsMerged(slot, busy) {
				continue
			}
			slots = append(slots, slot.UTC())
		}
	}
	return slots, nil
}

// CheckRange reports whether the dates from and to form a range GenerateSlots accepts.
func CheckRange(from, to time.Time, rules Rules) error {
	firstDay := dateIn(from, rules.Location)
	lastDay := dateIn(to, rules.Location)
	if lastDay.Before(firstDay) {
		return ErrInvalidRange
	}
	if days := DaysInclusive(firstDay, lastDay); days > rules.MaxRangeDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLarge, days, rules.MaxRangeDays)
	}
	return nil
}

// Window returns the instant range covering every business hour between the
// dates from and to, suitable for a freebusy query.
func Window(from, to time.Time, rules Rules) Interval {
	firstDay := dateIn(from, rules.Location)
	lastDay := dateIn(to, rules.Location)

	y, m, d := firstDay.Date()
	start := time.Date(y, m, d, 0, rules.DayStartMinute, 0, 0, rules.Location)
	y, m, d = lastDay.Date()
	end := time.Date(y, m, d, 0, rules.DayEndMinute, 0, 0, rules.Location)
	return Interval{Start: start, End: end}
}

// DaysInclusive counts the calendar days from first to last, both included.
func DaysInclusive(first, last time.Time) int {
	fy, fm, fd := first.Date()
	ly, lm, ld := last.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours()/24) + 1
}

func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
