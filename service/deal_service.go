package services

import (
	"errors"
	"fmt"

	"deals-server/api/eatclub"
	"deals-server/dao/redis"
	"deals-server/db"
	"deals-server/models"
	"deals-server/models/deal"

	log "github.com/sirupsen/logrus"
)

// DealService answers the active-deals and peak-window queries over the
// cached restaurant snapshot.
type DealService struct {
	restaurantDao *redis.RedisRestaurantDAO
	eatClubAPI    eatclub.EatClubAPI
}

// NewDealService constructs a new DealService with its dependencies.
func NewDealService(
	restaurantDao *redis.RedisRestaurantDAO,
	eatClubAPI eatclub.EatClubAPI) *DealService {

	return &DealService{
		restaurantDao: restaurantDao,
		eatClubAPI:    eatClubAPI,
	}
}

// GetActiveDeals returns the deals active at the given time of day, in feed
// order. The time is a zero-padded 24-hour "HH:mm" string. A resolution
// failure on any restaurant fails the whole request on this path.
func (ds *DealService) GetActiveDeals(timeOfDayAsString string) (*models.ActiveDealsResponse, error) {
	log.Printf("[DealService] getActiveDeals: %s", timeOfDayAsString)

	timeOfDay, err := models.ParseTimeOfDay(timeOfDayAsString)
	if err != nil {
		return nil, err
	}

	restaurants, err := ds.getRestaurants()
	if err != nil {
		return nil, err
	}

	deals, diags, err := deal.FromRestaurants(restaurants)
	logDiagnostics(diags)
	if err != nil {
		return nil, err
	}

	active := deal.Active(deals, timeOfDay)

	rows := make([]models.ActiveDeal, 0, len(active))
	for _, d := range active {
		details := d.Details()
		rows = append(rows, models.ActiveDeal{
			RestaurantObjectID: details.RestaurantObjectID,
			RestaurantName:     details.RestaurantName,
			RestaurantAddress1: details.RestaurantAddress1,
			RestaurantSuburb:   details.RestaurantSuburb,
			RestaurantOpen:     details.RestaurantOpen,
			RestaurantClose:    details.RestaurantClose,
			DealObjectID:       details.DealObjectID,
			Discount:           details.Discount,
			DineIn:             details.DineIn,
			Lightning:          details.Lightning,
			QtyLeft:            details.QtyLeft,
		})
	}

	return &models.ActiveDealsResponse{Deals: rows}, nil
}

// CalculatePeakWindow finds the contiguous minute window in which the most
// deals are simultaneously active. Deals that fail resolution are skipped
// so one bad restaurant cannot abort the aggregation.
func (ds *DealService) CalculatePeakWindow() (*models.PeakTimeWindowResponse, error) {
	windows, err := ds.resolveWindows()
	if err != nil {
		return nil, err
	}

	peakStart, peakEnd := deal.PeakWindow(windows)

	return &models.PeakTimeWindowResponse{
		PeakTimeStart: peakStart,
		PeakTimeEnd:   peakEnd,
	}, nil
}

// CalculateTimeline builds the per-minute active-deal counts, used by the
// timeline chart endpoint. Same skip policy as the peak path.
func (ds *DealService) CalculateTimeline() (deal.Timeline, error) {
	windows, err := ds.resolveWindows()
	if err != nil {
		return nil, err
	}

	timeline := deal.NewTimeline()
	for _, w := range windows {
		timeline.Add(w)
	}
	return timeline, nil
}

// resolveWindows resolves every deal of every restaurant, skipping the ones
// whose windows cannot be built.
func (ds *DealService) resolveWindows() ([]deal.TimeWindow, error) {
	restaurants, err := ds.getRestaurants()
	if err != nil {
		return nil, err
	}

	var windows []deal.TimeWindow
	for _, restaurant := range restaurants {
		for _, raw := range restaurant.Deals {
			resolved, diags, err := deal.Resolve(raw, restaurant)
			logDiagnostics(diags)
			if err != nil {
				log.Printf("[DealService] Skipping deal %s: %v", raw.ObjectID, err)
				continue
			}
			windows = append(windows, resolved.Window())
		}
	}
	return windows, nil
}

// getRestaurants reads the cached snapshot, falling back to a live fetch
// when the snapshot is absent or expired.
func (ds *DealService) getRestaurants() ([]models.Restaurant, error) {
	restaurants, err := ds.restaurantDao.GetRestaurants()
	if err == nil {
		return restaurants, nil
	}
	if !errors.Is(err, db.ErrCacheMiss) {
		log.Printf("[DealService] Snapshot read failed, refetching: %v", err)
	}

	resp, err := ds.eatClubAPI.GetRestaurants()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restaurants feed: %w", err)
	}
	if err := ds.restaurantDao.SetRestaurants(resp.Restaurants); err != nil {
		log.Printf("[DealService] Failed to cache restaurants snapshot: %v", err)
	}
	return resp.Restaurants, nil
}

// logDiagnostics surfaces resolver diagnostics as structured log records.
// Overrides are expected and logged at info; the rest mean the feed
// disagrees with restaurant hours and are logged at warn.
func logDiagnostics(diags []deal.Diagnostic) {
	for _, d := range diags {
		entry := log.WithFields(log.Fields{
			"id":            d.DealID,
			"error":         string(d.Tag),
			"fallbackValue": d.FallbackValue,
		})
		if d.Tag == deal.TAG_POLICY_OVERRIDE {
			entry.Info("deal time resolution override")
		} else {
			entry.Warn("deal time resolution fallback")
		}
	}
}
