package routes

import (
	"github.com/godswillumukoro/say-yes/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up the top-level routes for the application
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/api/client-log", controllers.ClientLogHandler).Methods("POST")
}
