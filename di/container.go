package di

import (
	"context"
	"time"

	"deals-server/api"
	"deals-server/api/eatclub"
	"deals-server/config"
	"deals-server/dao/redis"
	"deals-server/db"
	"deals-server/server"
	"deals-server/server/handlers"
	services "deals-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient                 db.RedisClient
	RedisRestaurantDao          *redis.RedisRestaurantDAO
	EatClubAPI                  eatclub.EatClubAPI
	DealService                 *services.DealService
	DealHandler                 *handlers.DealHandler
	MuxRouter                   *mux.Router
	Router                      *server.Router
	DealsHttpServer             *server.DealsHttpServer
	RestaurantsRefresherService *services.RestaurantsRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewCacheRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize Redis Restaurant DAO
	redisRestaurantDao := redis.NewRedisRestaurantDAO(
		redisClient, config.RESTAURANTS_CACHE_TTL_SECONDS*time.Second)

	// Initialize EatClub API - fixture-backed mock outside prod
	var eatClubAPIClient eatclub.EatClubAPI
	if env != "prod" {
		eatClubAPIClient = eatclub.NewEatClubApiClientMock()
		log.Printf("Using mock eatclub api")
	} else {
		log.Printf("Using prod eatclub api")
		httpClient := api.NewHTTPClient(config.EATCLUB_ENDPOINT_BASE)
		eatClubAPIClient = eatclub.NewEatClubApiClient(httpClient)
	}

	// Initialize service layer
	dealService := services.NewDealService(redisRestaurantDao, eatClubAPIClient)

	// Initialize deal handler
	dealHandler := handlers.NewDealHandler(dealService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(dealHandler, muxRouter)

	// initialize deals http server
	dealsHttpServer := server.NewDealsHttpServer(router, muxRouter)

	restaurantsRefresherService := services.NewRestaurantsRefresherService(redisRestaurantDao, eatClubAPIClient)

	return &Container{
		RedisClient:                 redisClient,
		RedisRestaurantDao:          redisRestaurantDao,
		EatClubAPI:                  eatClubAPIClient,
		DealService:                 dealService,
		DealHandler:                 dealHandler,
		MuxRouter:                   muxRouter,
		Router:                      router,
		DealsHttpServer:             dealsHttpServer,
		RestaurantsRefresherService: restaurantsRefresherService,
	}
}
