package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/bridge-orchestrator/api/handlers"
)

// NewRouter registers every orchestrator endpoint
func NewRouter(
	routeHandler *handlers.RouteHandler,
	bridgeHandler *handlers.BridgeHandler,
	trackingHandler *handlers.TrackingHandler,
	confirmationsHandler *handlers.ConfirmationsHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/routes", routeHandler.HandleRoute).Methods("GET")
	r.HandleFunc("/v1/routes/comparison", routeHandler.HandleComparison).Methods("GET")

	r.HandleFunc("/v1/bridges", bridgeHandler.HandleExecute).Methods("POST")
	r.HandleFunc("/v1/bridges", bridgeHandler.HandleHistory).Methods("GET")
	r.HandleFunc("/v1/bridges/{transactionId}", bridgeHandler.HandleStatus).Methods("GET")
	r.HandleFunc("/v1/stats", bridgeHandler.HandleStats).Methods("GET")

	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/tracking", trackingHandler.HandleTrack).Methods("POST")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/confirmations", confirmationsHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/tracking/analytics", trackingHandler.HandleAnalytics).Methods("GET")
	r.HandleFunc("/v1/tracking/{txHash}", trackingHandler.HandleStatus).Methods("GET")
	r.HandleFunc("/v1/tracking/{txHash}", trackingHandler.HandleStop).Methods("DELETE")
	return r
}

func Serve(ctx context.Context, addr string, handler http.Handler) {
	server := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
