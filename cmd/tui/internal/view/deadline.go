package view

import "time"

// DeadlinePreset is a payment deadline relative to when the settlement is created.
type DeadlinePreset int

const (
	DeadlineNone      DeadlinePreset = 0
	DeadlineThreeDays DeadlinePreset = 1
	DeadlineOneWeek   DeadlinePreset = 2
	DeadlineMonthEnd  DeadlinePreset = 3
)

func (d DeadlinePreset) String() string {
	switch d {
	case DeadlineNone:
		return "No deadline"
	case DeadlineThreeDays:
		return "In 3 days"
	case DeadlineOneWeek:
		return "In a week"
	case DeadlineMonthEnd:
		return "End of this month"
	}

	return "Unknown"
}

// Resolve returns the deadline as end of day in now's location, or nil.
func (d DeadlinePreset) Resolve(now time.Time) *time.Time {
	endOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	}

	var t time.Time

	switch d {
	case DeadlineThreeDays:
		t = endOfDay(now.AddDate(0, 0, 3))
	case DeadlineOneWeek:
		t = endOfDay(now.AddDate(0, 0, 7))
	case DeadlineMonthEnd:
		firstOfNext := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
		t = endOfDay(firstOfNext.AddDate(0, 0, -1))
	default:
		return nil
	}

	return &t
}
