// models/active_deals_response.go
package models

// ActiveDealsResponse is the payload of the active-deals query.
type ActiveDealsResponse struct {
	Deals []ActiveDeal `json:"deals"`
}

// ActiveDeal is one resolved-deal view row. Every field is a verbatim
// pass-through string; times are rendered "HH:mm".
type ActiveDeal struct {
	RestaurantObjectID string `json:"restaurantObjectId"`
	RestaurantName     string `json:"restaurantName"`
	RestaurantAddress1 string `json:"restaurantAddress1"`
	RestaurantSuburb   string `json:"restaurantSuburb"`
	RestaurantOpen     string `json:"restaurantOpen"`
	RestaurantClose    string `json:"restaurantClose"`
	DealObjectID       string `json:"dealObjectId"`
	Discount           string `json:"discount"`
	DineIn             string `json:"dineIn"`
	Lightning          string `json:"lightning"`
	QtyLeft            string `json:"qtyLeft"`
}
