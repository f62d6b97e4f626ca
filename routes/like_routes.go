package routes

import (
	"github.com/godswillumukoro/say-yes/controllers"
	"github.com/godswillumukoro/say-yes/services"

	"github.com/gorilla/mux"
)

// RegisterLikeRoutes sets up routes for swipes and match lookups under /api
func RegisterLikeRoutes(r *mux.Router, likeService *services.LikeService) {
	// Initialize the controller with the LikeService
	controller := controllers.NewLikeController(likeService)

	apiRouter := r.PathPrefix("/api").Subrouter()

	// Define routes and their corresponding handlers
	apiRouter.HandleFunc("/like", controller.HandleLike).Methods("POST")
	apiRouter.HandleFunc("/match/{id}", controller.HandleGetMatch).Methods("GET")
	apiRouter.HandleFunc("/matches", controller.HandleGetMatches).Methods("GET")
}
