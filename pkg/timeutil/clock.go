// Package timeutil provides HH:MM clock values and ISO date helpers shared by
// the task forms and the calendar surface.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// LayoutISO is the wire format for task dates.
	LayoutISO = "2006-01-02"
	// LayoutClock is the wire format for task times.
	LayoutClock = "15:04"
	// MinTaskMinutes is the smallest allowed gap between start and end.
	MinTaskMinutes = 60
)

// Clock is a time of day with minute resolution, detached from any date.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("clock value %q out of range", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// ClockOf truncates a time.Time to its clock value.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the clock value as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

// AddMinutes returns the clock advanced by n minutes. The result wraps within
// the same day, matching the behavior of time arithmetic on a wall clock.
func (c Clock) AddMinutes(n int) Clock {
	total := c.Minutes() + n
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return Clock{Hour: total / 60, Minute: total % 60}
}

// AddMinutes is the string-in string-out convenience used by form corrections.
// Invalid input is returned unchanged.
func AddMinutes(clock string, n int) string {
	c, err := ParseClock(clock)
	if err != nil {
		return clock
	}
	return c.AddMinutes(n).String()
}

// Today formats now as an ISO date.
func Today(now time.Time) string {
	return now.Format(LayoutISO)
}

// StartOfWeek returns the Monday of the week containing t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// ParseDate parses an ISO date in the local zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, strings.TrimSpace(s), time.Local)
}
