package routes

import (
	"github.com/godswillumukoro/say-yes/controllers"
	"github.com/godswillumukoro/say-yes/services"

	"github.com/gorilla/mux"
)

// RegisterSpeechRoutes sets up the Deepgram proxy routes under /api
func RegisterSpeechRoutes(r *mux.Router, speechService *services.SpeechService) {
	controller := controllers.NewSpeechController(speechService)

	apiRouter := r.PathPrefix("/api").Subrouter()

	apiRouter.HandleFunc("/stt", controller.HandleSpeechToText).Methods("POST")
	apiRouter.HandleFunc("/tts", controller.HandleTextToSpeech).Methods("POST")
}
