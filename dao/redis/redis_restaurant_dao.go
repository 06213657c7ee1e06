package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"deals-server/db"
	"deals-server/models"

	log "github.com/sirupsen/logrus"
)

const RESTAURANTS_SNAPSHOT_KEY_V1 = "restaurants_snapshot_v1"

// RedisRestaurantDAO caches the upstream restaurant snapshot in Redis.
// Eviction is handled by the per-key TTL, so a stale snapshot simply
// disappears and the next reader refetches.
type RedisRestaurantDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisRestaurantDAO initializes a RedisRestaurantDAO with the Redis
// client and the snapshot TTL.
func NewRedisRestaurantDAO(client db.RedisClient, ttl time.Duration) *RedisRestaurantDAO {
	return &RedisRestaurantDAO{client: client, ttl: ttl}
}

// SetRestaurants stores the whole snapshot under the versioned key.
func (dao *RedisRestaurantDAO) SetRestaurants(restaurants []models.Restaurant) error {
	data, err := json.Marshal(restaurants)
	if err != nil {
		return fmt.Errorf("failed to marshal restaurants snapshot: %w", err)
	}
	if err := dao.client.SetWithTTL(RESTAURANTS_SNAPSHOT_KEY_V1, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set restaurants snapshot in redis: %w", err)
	}
	log.Printf("[RedisRestaurantDAO] Cached snapshot of %d restaurants (ttl=%s)", len(restaurants), dao.ttl)
	return nil
}

// GetRestaurants retrieves the cached snapshot. A missing or expired key
// surfaces as db.ErrCacheMiss so the caller can refetch.
func (dao *RedisRestaurantDAO) GetRestaurants() ([]models.Restaurant, error) {
	str, err := dao.client.Get(RESTAURANTS_SNAPSHOT_KEY_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurants snapshot from redis: %w", err)
	}
	var restaurants []models.Restaurant
	if err := json.Unmarshal([]byte(str), &restaurants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurants snapshot JSON: %w", err)
	}
	return restaurants, nil
}

// DeleteRestaurants drops the cached snapshot.
func (dao *RedisRestaurantDAO) DeleteRestaurants() error {
	if err := dao.client.Del(RESTAURANTS_SNAPSHOT_KEY_V1); err != nil {
		return fmt.Errorf("failed to delete restaurants snapshot key: %w", err)
	}
	log.Printf("[RedisRestaurantDAO] Deleted cached restaurants snapshot")
	return nil
}
