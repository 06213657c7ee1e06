package util

import (
	"encoding/json"
	"fmt"
	"os"

	"deals-server/models"
)

// ReadRestaurantsResponseFromJSON loads a RestaurantsResponse from JSON on disk.
func ReadRestaurantsResponseFromJSON(filePath string) (*models.RestaurantsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.RestaurantsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RestaurantsResponse: %w", err)
	}
	return &resp, nil
}

// PrintRestaurantsResponsePartially prints key fields of a RestaurantsResponse.
func PrintRestaurantsResponsePartially(resp *models.RestaurantsResponse) {
	fmt.Printf("Restaurants: %d\n", len(resp.Restaurants))
	if len(resp.Restaurants) > 0 {
		r := resp.Restaurants[0]
		fmt.Printf("First restaurant: %s\n", r.ToString())
	}
}
