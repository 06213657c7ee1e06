package eatclub

import (
	"deals-server/api"
	"deals-server/models"
)

// EatClubApiClient embeds the common HTTPClient
type EatClubApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewEatClubApiClient creates a new instance of EatClubApiClient
func NewEatClubApiClient(httpClient *api.HTTPClient) *EatClubApiClient {
	return &EatClubApiClient{
		HTTPClient: httpClient,
	}
}

// GetRestaurants fetches the full deals feed and decodes it into the
// RestaurantsResponse envelope.
func (c *EatClubApiClient) GetRestaurants() (*models.RestaurantsResponse, error) {
	var response models.RestaurantsResponse
	err := c.Request("GET", "/challengedata.json", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
