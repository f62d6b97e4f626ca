package routes

import (
	"github.com/godswillumukoro/say-yes/controllers"
	"github.com/godswillumukoro/say-yes/services"

	"github.com/gorilla/mux"
)

// RegisterImageRoutes sets up the photo generation proxy under /api
func RegisterImageRoutes(r *mux.Router, imageService *services.ImageService) {
	controller := controllers.NewImageController(imageService)

	r.HandleFunc("/api/generate-photos", controller.HandleGeneratePhotos).Methods("POST")
}
