package schedule

import (
	"errors"
	"time"
)

var ErrInvalidTimeRange = errors.New("end time must be after start time")

// Window is a requested reservation span: a calendar day plus a start and
// end time of day. The date's time-of-day components are ignored.
type Window struct {
	date  time.Time
	start TimeOfDay
	end   TimeOfDay
}

func NewWindow(date time.Time, start, end TimeOfDay) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidTimeRange
	}
	return Window{date: normalizeDate(date), start: start, end: end}, nil
}

func (w Window) Date() time.Time  { return w.date }
func (w Window) Start() TimeOfDay { return w.start }
func (w Window) End() TimeOfDay   { return w.end }

func (w Window) DurationHours() float64 {
	return DurationHours(w.start, w.end)
}

func (w Window) OverlapsTimes(start, end TimeOfDay) bool {
	return Overlaps(w.start, w.end, start, end)
}

// SameDay compares year, month and day only.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
