package routes

import (
	"github.com/godswillumukoro/say-yes/controllers"
	"github.com/godswillumukoro/say-yes/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for conversation reads under /api
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	// Initialize the controller with the ChatService
	controller := controllers.NewChatController(chatService)

	apiRouter := r.PathPrefix("/api").Subrouter()

	// Define routes and their corresponding handlers
	apiRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	apiRouter.HandleFunc("/conversations", controller.HandleGetConversations).Methods("GET")
}
