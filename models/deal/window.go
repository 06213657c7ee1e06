package deal

import (
	"deals-server/models"
	"errors"
	"fmt"
)

// ErrInvalidWindow marks a time window that cannot be built: a missing
// bound, or a start after its end.
var ErrInvalidWindow = errors.New("invalid time window")

// TimeWindow is an immutable inclusive [start, end] time-of-day range.
type TimeWindow struct {
	start models.TimeOfDay
	end   models.TimeOfDay
}

// NewTimeWindow builds a validated window. Either bound being nil, or
// start > end, yields ErrInvalidWindow.
func NewTimeWindow(start, end *models.TimeOfDay) (TimeWindow, error) {
	if !IsValidWindow(start, end) {
		return TimeWindow{}, fmt.Errorf("%w: (%s, %s), start must be before or equal to end and neither can be nil",
			ErrInvalidWindow, formatBound(start), formatBound(end))
	}
	return TimeWindow{start: *start, end: *end}, nil
}

// IsValidWindow reports whether the pair would form a valid window.
func IsValidWindow(start, end *models.TimeOfDay) bool {
	return start != nil && end != nil && *start <= *end
}

// Contains reports whether t falls within the window, inclusive on both
// ends.
func (w TimeWindow) Contains(t models.TimeOfDay) bool {
	return w.start <= t && t <= w.end
}

func (w TimeWindow) Start() models.TimeOfDay {
	return w.start
}

func (w TimeWindow) End() models.TimeOfDay {
	return w.end
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s]", w.start, w.end)
}

func formatBound(t *models.TimeOfDay) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
