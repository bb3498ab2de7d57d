package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/meirhorwitz/site-api/internal/rest"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Scheduling
	r.HandleFunc("/slots", deps.SchedulingHandler.GetSlots).Methods("GET")
	r.HandleFunc("/book", deps.SchedulingHandler.Book).Methods("POST")

	// Project brief intake
	r.HandleFunc("/brief", deps.BriefHandler.Submit).Methods("POST")

	// PayPal checkout passthrough
	r.HandleFunc("/api/orders", deps.PayPalHandler.CreateOrder).Methods("POST")
	r.HandleFunc("/api/orders/{orderID}/capture", deps.PayPalHandler.CaptureOrder).Methods("POST")

	// Health probe
	r.HandleFunc("/", healthCheck).Methods("GET")

	// CORS preflight. Middlewares only run on matched routes, so preflight
	// requests need a route of their own for the CORS headers to be set.
	r.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

type healthResponse struct {
	Status string `json:"status"`
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	rest.JSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
