package models

import "fmt"

// Restaurant is one entry of the upstream deals feed, with its operating
// hours and raw deal records.
type Restaurant struct {
	ObjectID  string   `json:"objectId"`
	Name      string   `json:"name"`
	Address1  string   `json:"address1"`
	Suburb    string   `json:"suburb"`
	Cuisines  []string `json:"cuisines,omitempty"`
	ImageLink string   `json:"imageLink,omitempty"`

	Open  *TimeOfDay `json:"open"`
	Close *TimeOfDay `json:"close"`

	Deals []Deal `json:"deals"`
}

func (r *Restaurant) ToString() string {
	return fmt.Sprintf("Restaurant(objectId=%s, name=%s, suburb=%s, deals=%d)",
		r.ObjectID, r.Name, r.Suburb, len(r.Deals))
}

// Deal is a raw deal record as delivered by the feed. All four time fields
// are optional; discount, dineIn, lightning and qtyLeft are opaque
// pass-through metadata.
type Deal struct {
	ObjectID  string `json:"objectId"`
	Discount  string `json:"discount"`
	DineIn    string `json:"dineIn"`
	Lightning string `json:"lightning"`
	QtyLeft   string `json:"qtyLeft"`

	Open  *TimeOfDay `json:"open,omitempty"`
	Close *TimeOfDay `json:"close,omitempty"`
	Start *TimeOfDay `json:"start,omitempty"`
	End   *TimeOfDay `json:"end,omitempty"`
}
