package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/godswillumukoro/say-yes/services"
)

// ChatController serves conversation history and the conversation list.
// Message sends happen over the socket transport, not REST, so the sender
// identity stays bound to an authenticated connection.
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// HandleGetMessages fetches the message history between two users
func (cc *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	otherID := r.URL.Query().Get("otherId")
	if userID == "" || otherID == "" {
		http.Error(w, `{"error": "userId and otherId required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = services.DefaultHistoryLimit
	}

	messages, err := cc.ChatService.GetConversation(context.TODO(), userID, otherID, int32(limit))
	if err != nil {
		log.Printf("Failed to fetch messages: %v", err)
		http.Error(w, `{"error": "messages failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"messages": messages})
}

// HandleGetConversations lists the last message per peer, newest first
func (cc *ChatController) HandleGetConversations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId required"}`, http.StatusBadRequest)
		return
	}

	conversations, err := cc.ChatService.GetConversationSummaries(context.TODO(), userID)
	if err != nil {
		log.Printf("Failed to fetch conversations: %v", err)
		http.Error(w, `{"error": "conversations failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"conversations": conversations})
}
