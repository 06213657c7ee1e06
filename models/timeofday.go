package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// MINUTES_PER_DAY bounds every TimeOfDay value.
const MINUTES_PER_DAY = 24 * 60

var ErrInvalidTimeFormat = errors.New("invalid time format")

// TimeOfDay is a wall-clock time with minute resolution, stored as minutes
// since midnight. No date, no timezone.
type TimeOfDay int

// FromClock builds a TimeOfDay from an hour/minute pair.
func FromClock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses a zero-padded 24-hour "HH:mm" string, the format
// used by query parameters.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 {
		return 0, fmt.Errorf("%w: %q, expected HH:mm", ErrInvalidTimeFormat, s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q, expected HH:mm", ErrInvalidTimeFormat, s)
	}
	return FromClock(t.Hour(), t.Minute()), nil
}

// ParseFeedTime parses the upstream feed's "h:mma" format, case-insensitive
// ("3:00pm", "10:30AM").
func ParseFeedTime(s string) (TimeOfDay, error) {
	t, err := time.Parse("3:04pm", strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q, expected h:mma", ErrInvalidTimeFormat, s)
	}
	return FromClock(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// AddMinutes returns the time shifted by m minutes. No day wrap-around; the
// result may exceed the last minute of the day, which only matters to
// sweep-boundary bookkeeping.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

// String renders the time in 24-hour "HH:mm" form, the only form used at
// the service boundary.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts both the feed's "h:mma" form and the canonical
// "HH:mm" form.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeFormat, string(data))
	}

	parsed, err := ParseFeedTime(s)
	if err != nil {
		parsed, err = ParseTimeOfDay(s)
	}
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
