package deal

import (
	"deals-server/models"
	"fmt"
)

// Deal is a raw deal record reconciled against its restaurant's operating
// hours: an effective active window plus pass-through details. Immutable
// once resolved.
type Deal struct {
	window  TimeWindow
	details Details
}

// boundInput feeds the resolution of one bound. Start and end resolution
// are symmetric, so a single rule chain serves both sides.
type boundInput struct {
	dealID      string
	explicit    *models.TimeOfDay // deal start or end
	hint        *models.TimeOfDay // deal open or close
	hours       TimeWindow        // restaurant operating window
	house       models.TimeOfDay  // restaurant open or close, the fallback value
	fallbackTag DiagnosticTag     // INVALID_START_TIME or INVALID_END_TIME
}

// boundRule inspects one candidate source for a bound: it either resolves
// the bound or defers to the next rule, appending diagnostics either way.
type boundRule func(in boundInput, diags *[]Diagnostic) (models.TimeOfDay, bool)

// boundRules is evaluated in order. The last rule always resolves.
var boundRules = []boundRule{
	useExplicitTimeWithinHours,
	useRestaurantHoursOnHint,
	useRestaurantHoursFallback,
}

// useExplicitTimeWithinHours keeps the deal's own start/end when it falls
// within the restaurant's operating hours, inclusive.
func useExplicitTimeWithinHours(in boundInput, diags *[]Diagnostic) (models.TimeOfDay, bool) {
	if in.explicit == nil {
		return 0, false
	}
	if in.hours.Contains(*in.explicit) {
		return *in.explicit, true
	}
	*diags = append(*diags, Diagnostic{
		DealID:        in.dealID,
		Tag:           TAG_OUTSIDE_HOURS,
		FallbackValue: in.house.String(),
	})
	return 0, false
}

// useRestaurantHoursOnHint handles deals that define their own open/close:
// the restaurant's hours win by policy.
func useRestaurantHoursOnHint(in boundInput, diags *[]Diagnostic) (models.TimeOfDay, bool) {
	if in.hint == nil {
		return 0, false
	}
	*diags = append(*diags, Diagnostic{
		DealID:        in.dealID,
		Tag:           TAG_POLICY_OVERRIDE,
		FallbackValue: in.house.String(),
	})
	return in.house, true
}

// useRestaurantHoursFallback covers deals with no usable time info at all.
func useRestaurantHoursFallback(in boundInput, diags *[]Diagnostic) (models.TimeOfDay, bool) {
	*diags = append(*diags, Diagnostic{
		DealID:        in.dealID,
		Tag:           in.fallbackTag,
		FallbackValue: in.house.String(),
	})
	return in.house, true
}

func resolveBound(in boundInput, diags *[]Diagnostic) models.TimeOfDay {
	for _, rule := range boundRules {
		if v, ok := rule(in, diags); ok {
			return v
		}
	}
	return in.house
}

// Resolve derives the deal's effective active window from the raw record
// and the owning restaurant's hours. Diagnostics report every fallback or
// override branch taken; they never change the resolved value. The error is
// ErrInvalidWindow when the restaurant's own hours are missing or invalid,
// or when the resolved start ends up after the resolved end.
func Resolve(raw models.Deal, restaurant models.Restaurant) (Deal, []Diagnostic, error) {
	hours, err := NewTimeWindow(restaurant.Open, restaurant.Close)
	if err != nil {
		return Deal{}, nil, fmt.Errorf("restaurant %s operating hours: %w", restaurant.ObjectID, err)
	}

	var diags []Diagnostic

	start := resolveBound(boundInput{
		dealID:      raw.ObjectID,
		explicit:    raw.Start,
		hint:        raw.Open,
		hours:       hours,
		house:       hours.Start(),
		fallbackTag: TAG_INVALID_START_TIME,
	}, &diags)

	end := resolveBound(boundInput{
		dealID:      raw.ObjectID,
		explicit:    raw.End,
		hint:        raw.Close,
		hours:       hours,
		house:       hours.End(),
		fallbackTag: TAG_INVALID_END_TIME,
	}, &diags)

	window, err := NewTimeWindow(&start, &end)
	if err != nil {
		return Deal{}, diags, fmt.Errorf("deal %s resolved window: %w", raw.ObjectID, err)
	}

	return Deal{window: window, details: newDetails(raw, restaurant, hours)}, diags, nil
}

// FromRestaurants resolves every deal of every restaurant in feed order.
// The first resolution failure aborts; callers that prefer to skip bad
// entries resolve deal by deal instead.
func FromRestaurants(restaurants []models.Restaurant) ([]Deal, []Diagnostic, error) {
	var deals []Deal
	var diags []Diagnostic

	for _, restaurant := range restaurants {
		for _, raw := range restaurant.Deals {
			resolved, dealDiags, err := Resolve(raw, restaurant)
			if err != nil {
				return nil, diags, err
			}
			diags = append(diags, dealDiags...)
			deals = append(deals, resolved)
		}
	}
	return deals, diags, nil
}

// IsActive reports whether the deal is active at the given time.
func (d Deal) IsActive(t models.TimeOfDay) bool {
	return d.window.Contains(t)
}

func (d Deal) Window() TimeWindow {
	return d.window
}

func (d Deal) Details() Details {
	return d.details
}

func (d Deal) Start() models.TimeOfDay {
	return d.window.Start()
}

func (d Deal) End() models.TimeOfDay {
	return d.window.End()
}

// Active returns the subset of deals active at t, preserving input order.
func Active(deals []Deal, t models.TimeOfDay) []Deal {
	var active []Deal
	for _, d := range deals {
		if d.IsActive(t) {
			active = append(active, d)
		}
	}
	return active
}
