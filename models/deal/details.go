package deal

import "deals-server/models"

// Details carries the opaque deal metadata plus the owning restaurant's
// identity and hours, all as pass-through strings.
type Details struct {
	RestaurantObjectID string
	RestaurantName     string
	RestaurantAddress1 string
	RestaurantSuburb   string
	RestaurantOpen     string
	RestaurantClose    string

	DealObjectID string
	Discount     string
	DineIn       string
	Lightning    string
	QtyLeft      string
}

func newDetails(raw models.Deal, restaurant models.Restaurant, hours TimeWindow) Details {
	return Details{
		RestaurantObjectID: restaurant.ObjectID,
		RestaurantName:     restaurant.Name,
		RestaurantAddress1: restaurant.Address1,
		RestaurantSuburb:   restaurant.Suburb,
		RestaurantOpen:     hours.Start().String(),
		RestaurantClose:    hours.End().String(),
		DealObjectID:       raw.ObjectID,
		Discount:           raw.Discount,
		DineIn:             raw.DineIn,
		Lightning:          raw.Lightning,
		QtyLeft:            raw.QtyLeft,
	}
}
