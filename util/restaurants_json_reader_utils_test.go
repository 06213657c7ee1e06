package util

import (
	"os"
	"path/filepath"
	"testing"
)

const feedJSON = `{
  "restaurants": [
    {
      "objectId": "D80263E8-FD89-2C70-FF6B-D854ADB8DB00",
      "name": "Masala Kitchen",
      "address1": "55 Walsh Street",
      "suburb": "Lower East",
      "cuisines": ["Indian", "Kebab"],
      "imageLink": "https://example.com/masala.jpg",
      "open": "3:00pm",
      "close": "9:00pm",
      "deals": [
        {
          "objectId": "DEA567C5-F64C-3C03-FF00-E3B24909BE00",
          "discount": "50",
          "dineIn": "false",
          "lightning": "true",
          "qtyLeft": "5",
          "start": "3:00pm",
          "end": "9:00pm"
        },
        {
          "objectId": "CDB2B42A-248C-EF5D-FF49-68EB8E0EF900",
          "discount": "20",
          "dineIn": "true",
          "lightning": "false",
          "qtyLeft": "2"
        }
      ]
    }
  ]
}`

func TestReadRestaurantsResponseFromJSON_Success(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "restaurants_response.json")
	if err := os.WriteFile(path, []byte(feedJSON), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	// Act
	resp, err := ReadRestaurantsResponseFromJSON(path)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resp.Restaurants) != 1 {
		t.Fatalf("Expected 1 restaurant, got %d", len(resp.Restaurants))
	}

	r := resp.Restaurants[0]
	if r.Name != "Masala Kitchen" {
		t.Errorf("Expected name 'Masala Kitchen', got %q", r.Name)
	}
	if r.Open == nil || r.Open.String() != "15:00" {
		t.Errorf("Expected open 15:00, got %v", r.Open)
	}
	if r.Close == nil || r.Close.String() != "21:00" {
		t.Errorf("Expected close 21:00, got %v", r.Close)
	}
	if len(r.Deals) != 2 {
		t.Fatalf("Expected 2 deals, got %d", len(r.Deals))
	}
	if r.Deals[0].Start == nil || r.Deals[0].Start.String() != "15:00" {
		t.Errorf("Expected deal start 15:00, got %v", r.Deals[0].Start)
	}
	if r.Deals[1].Start != nil || r.Deals[1].End != nil {
		t.Errorf("Expected second deal to have no time fields, got start=%v end=%v",
			r.Deals[1].Start, r.Deals[1].End)
	}
}

func TestReadRestaurantsResponseFromJSON_MissingFile(t *testing.T) {
	_, err := ReadRestaurantsResponseFromJSON(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected an error for a missing file, got nil")
	}
}

func TestReadRestaurantsResponseFromJSON_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants_response.json")
	if err := os.WriteFile(path, []byte(`{"restaurants": [`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := ReadRestaurantsResponseFromJSON(path)
	if err == nil {
		t.Fatal("Expected an error for malformed JSON, got nil")
	}
}
