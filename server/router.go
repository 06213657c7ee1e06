package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DealHandlerAPI is the handler surface the router wires up.
type DealHandlerAPI interface {
	GetActiveDeals(w http.ResponseWriter, r *http.Request)
	GetPeakWindow(w http.ResponseWriter, r *http.Request)
	GetTimelineChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dealHandler DealHandlerAPI
	router      *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	dealHandler DealHandlerAPI,
	router *mux.Router) *Router {
	return &Router{
		dealHandler: dealHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?timeOfDay={HH:mm}
	r.router.HandleFunc("/v1/deals/active", r.dealHandler.GetActiveDeals).Methods("GET")

	r.router.HandleFunc("/v1/deals/peak", r.dealHandler.GetPeakWindow).Methods("GET")

	r.router.HandleFunc("/v1/deals/timeline/chart", r.dealHandler.GetTimelineChart).Methods("GET")

	r.router.HandleFunc("/ping", r.dealHandler.Ping).Methods("GET")
}
