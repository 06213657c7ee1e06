package main

import (
	"os"
	"time"

	"deals-server/config"
	"deals-server/di"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	log.Println("warming restaurants snapshot cache")
	if err := container.RestaurantsRefresherService.RefreshRestaurantsData(); err != nil {
		log.Printf("initial snapshot refresh failed, queries will fetch on demand: %v", err)
	}

	log.Println("starting periodic refresher job")
	container.RestaurantsRefresherService.StartPeriodicJob(
		config.RESTAURANTS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	log.Println("starting server")
	container.DealsHttpServer.Start()
}
