package services

import (
	"time"

	"deals-server/api/eatclub"
	"deals-server/dao/redis"

	log "github.com/sirupsen/logrus"
)

// RestaurantsRefresherService periodically re-fetches the deals feed and
// warms the snapshot cache, so queries rarely pay for a live fetch.
type RestaurantsRefresherService struct {
	restaurantDao *redis.RedisRestaurantDAO
	eatClubAPI    eatclub.EatClubAPI
}

// NewRestaurantsRefresherService constructs a new Refresher with dependencies.
func NewRestaurantsRefresherService(
	restaurantDao *redis.RedisRestaurantDAO,
	eatClubAPI eatclub.EatClubAPI,
) *RestaurantsRefresherService {
	return &RestaurantsRefresherService{
		restaurantDao: restaurantDao,
		eatClubAPI:    eatClubAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (rr *RestaurantsRefresherService) StartPeriodicJob(interval time.Duration) {
	go rr.startPeriodicJob(interval)
}

func (rr *RestaurantsRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[RestaurantsRefresherService] Running periodic restaurants refresher job.")
		if err := rr.RefreshRestaurantsData(); err != nil {
			log.Printf("[RestaurantsRefresherService] RefreshRestaurantsData returned error: %v", err)
		} else {
			log.Println("[RestaurantsRefresherService] RefreshRestaurantsData completed successfully.")
		}
	}
}

// RefreshRestaurantsData fetches the feed and replaces the cached snapshot.
func (rr *RestaurantsRefresherService) RefreshRestaurantsData() error {
	resp, err := rr.eatClubAPI.GetRestaurants()
	if err != nil {
		return err
	}

	log.Printf("[RestaurantsRefresherService] Fetched %d restaurants from feed", len(resp.Restaurants))

	if err := rr.restaurantDao.SetRestaurants(resp.Restaurants); err != nil {
		return err
	}
	return nil
}
