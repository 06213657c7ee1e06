// models/restaurants_response.go
package models

// RestaurantsResponse is the envelope of the upstream deals feed.
type RestaurantsResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
}
