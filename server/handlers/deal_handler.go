package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"deals-server/models"
	services "deals-server/service"
	"deals-server/util"

	log "github.com/sirupsen/logrus"
)

const (
	TIME_OF_DAY_QUERY_ARG = "timeOfDay"
)

type DealHandler struct {
	dealService *services.DealService
}

func NewDealHandler(dealService *services.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

// GetActiveDeals handles GET /v1/deals/active?timeOfDay=HH:mm
func (h *DealHandler) GetActiveDeals(w http.ResponseWriter, r *http.Request) {
	timeOfDay := r.URL.Query().Get(TIME_OF_DAY_QUERY_ARG)

	response, err := h.dealService.GetActiveDeals(timeOfDay)
	if errors.Is(err, models.ErrInvalidTimeFormat) {
		writeError(w, http.StatusBadRequest, "INVALID_TIME_FORMAT", err)
		return
	}
	if err != nil {
		log.Printf("[DealHandler] Error computing active deals: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	writeJSON(w, response)
}

// GetPeakWindow handles GET /v1/deals/peak
func (h *DealHandler) GetPeakWindow(w http.ResponseWriter, r *http.Request) {
	response, err := h.dealService.CalculatePeakWindow()
	if err != nil {
		log.Printf("[DealHandler] Error computing peak window: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	writeJSON(w, response)
}

// GetTimelineChart handles GET /v1/deals/timeline/chart, rendering the
// per-minute active-deal counts as an HTML chart.
func (h *DealHandler) GetTimelineChart(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.dealService.CalculateTimeline()
	if err != nil {
		log.Printf("[DealHandler] Error computing timeline: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotDealTimeline(w, timeline); err != nil {
		log.Printf("[DealHandler] Error rendering timeline chart: %v", err)
	}
}

// Ping handles GET /ping
func (h *DealHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[DealHandler] Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		ErrorCode: code,
		Message:   err.Error(),
		Timestamp: time.Now(),
	})
}
