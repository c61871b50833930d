package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")

// TimeOfDay is a wall-clock time normalized to minutes since midnight.
type TimeOfDay struct {
	minutes int
}

// ParseTimeOfDay parses a "HH:MM" 24-hour string. Malformed input is never
// repaired or guessed at.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, ErrInvalidTimeFormat
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeFormat
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeFormat
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return TimeOfDay{}, ErrInvalidTimeFormat
	}

	return TimeOfDay{minutes: hours*60 + mins}, nil
}

// MustParseTimeOfDay is for fixtures and constants known to be valid.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// Hour is the integer hour component, used by peak-hour rule matching.
func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// DurationHours is (end - start) in fractional hours. It may be zero or
// negative for inverted ranges; callers must reject non-positive results
// before booking.
func DurationHours(start, end TimeOfDay) float64 {
	return float64(end.minutes-start.minutes) / 60
}

// Overlaps reports whether two half-open intervals share at least one
// instant. Back-to-back windows where one's end equals the other's start do
// not overlap.
func Overlaps(startA, endA, startB, endB TimeOfDay) bool {
	return startA.minutes < endB.minutes && startB.minutes < endA.minutes
}
