package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Restaurants snapshot cache
// The TTL doubles as the eviction schedule: an expired snapshot is simply
// refetched by the next reader.
const RESTAURANTS_CACHE_TTL_SECONDS = 300

// Restaurants Refresher config
const RESTAURANTS_REFRESHER_SCHEDULE_MINUTES = 5

// EatClub deals feed
const EATCLUB_ENDPOINT_BASE = "https://eccdn.com.au/misc"

// HTTP server
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const RESTAURANTS_RESPONSE_RESOURCE = "restaurants_response.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
