package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deals-server/config"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DealsHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewDealsHttpServer(router *Router, muxRouter *mux.Router) *DealsHttpServer {
	return &DealsHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers the routes and serves until an interrupt or termination
// signal arrives, then shuts down gracefully.
func (s *DealsHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    config.SERVER_ADDRESS,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		log.Printf("Starting server on %s", config.SERVER_ADDRESS)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	log.Println("Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
