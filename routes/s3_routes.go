package routes

import (
	"github.com/godswillumukoro/say-yes/controllers"
	"github.com/godswillumukoro/say-yes/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for photo upload and presigned URLs
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	r.HandleFunc("/api/photo", controller.HandleUploadPhoto).Methods("POST")
	r.HandleFunc("/generate-presigned-url", controller.HandleGeneratePresignedURL).Methods("POST")
	r.HandleFunc("/get-presigned-read-url", controller.HandleGetPresignedReadURL).Methods("POST")
}
