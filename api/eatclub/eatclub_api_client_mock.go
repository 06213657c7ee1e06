package eatclub

import (
	"deals-server/config"
	"deals-server/models"
	"deals-server/util"

	log "github.com/sirupsen/logrus"
)

// EatClubApiClientMock serves the deals feed from a JSON fixture on disk.
type EatClubApiClientMock struct {
}

// NewEatClubApiClientMock creates a new instance of EatClubApiClientMock
func NewEatClubApiClientMock() *EatClubApiClientMock {
	return &EatClubApiClientMock{}
}

// GetRestaurants reads the fixture feed instead of calling the live API.
func (c *EatClubApiClientMock) GetRestaurants() (*models.RestaurantsResponse, error) {
	path := config.GetResourcePath(config.RESTAURANTS_RESPONSE_RESOURCE)
	response, err := util.ReadRestaurantsResponseFromJSON(path)
	if err != nil {
		log.Printf("Could not read restaurants response from json: %v", err)
		return nil, err
	}
	return response, nil
}
