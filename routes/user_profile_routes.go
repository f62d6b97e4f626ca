package routes

import (
	"github.com/godswillumukoro/say-yes/controllers"
	"github.com/godswillumukoro/say-yes/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for onboarding, the candidate
// feed, and admin photo operations under /api
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	// Initialize the controller with the provided UserProfileService
	controller := controllers.NewUserProfileController(userProfileService)

	apiRouter := r.PathPrefix("/api").Subrouter()

	// Define routes and their corresponding handlers
	apiRouter.HandleFunc("/onboarding", controller.HandleOnboarding).Methods("POST")
	apiRouter.HandleFunc("/candidates", controller.HandleGetCandidates).Methods("GET")
	apiRouter.HandleFunc("/admin/set-photos", controller.HandleSetPhotos).Methods("POST")
	apiRouter.HandleFunc("/admin/add-photo", controller.HandleAddPhoto).Methods("POST")
}
