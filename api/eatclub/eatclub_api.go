package eatclub

import (
	"deals-server/models"
)

// EatClubAPI defines the interface for fetching the restaurant deals feed.
type EatClubAPI interface {
	GetRestaurants() (*models.RestaurantsResponse, error)
}
