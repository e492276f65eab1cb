package booking

import (
	"time"

	"giggo-server/internal/pkg/clock"
)

// WindowDays is the rolling booking horizon: today plus the next six days.
const WindowDays = 7

// Window is the set of bookable (date, time-label) pairs offered to one
// booking session. It is computed when the workflow is entered and not cached
// beyond that, so "today" is always the caller's today.
type Window struct {
	days  []time.Time
	times []string
}

func (w Window) Days() []time.Time {
	days := make([]time.Time, len(w.days))
	copy(days, w.days)
	return days
}

func (w Window) Times() []string {
	times := make([]string, len(w.times))
	copy(times, w.times)
	return times
}

// DateAt resolves a date index into the concrete calendar day. Index 0 is
// today and is every bit as valid as the rest of the window.
func (w Window) DateAt(index int) (time.Time, bool) {
	if index < 0 || index >= len(w.days) {
		return time.Time{}, false
	}
	return w.days[index], true
}

func (w Window) HasTime(label string) bool {
	for _, t := range w.times {
		if t == label {
			return true
		}
	}
	return false
}

// AvailabilitySource yields the bookable window for a listing. The shipped
// implementation ignores the listing and serves a universal slot table; a
// per-provider scheduler can be substituted without touching the workflow.
type AvailabilitySource interface {
	WindowFor(listingID string, now time.Time) Window
}

// defaultTimeLabels spans business hours hourly with a lunch gap between
// 12:00 PM and 2:00 PM.
var defaultTimeLabels = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
}

type FixedSlotTable struct{}

func NewFixedSlotTable() *FixedSlotTable {
	return &FixedSlotTable{}
}

func (f *FixedSlotTable) WindowFor(_ string, now time.Time) Window {
	start := clock.StartOfDay(now)
	days := make([]time.Time, WindowDays)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}

	times := make([]string, len(defaultTimeLabels))
	copy(times, defaultTimeLabels)

	return Window{days: days, times: times}
}
