package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/godswillumukoro/say-yes/services"

	"github.com/gorilla/mux"
)

// LikeController handles swipe submissions and match lookups
type LikeController struct {
	LikeService *services.LikeService
}

// NewLikeController creates a new LikeController instance
func NewLikeController(likeService *services.LikeService) *LikeController {
	return &LikeController{LikeService: likeService}
}

// HandleLike records a swipe and reports whether it completed a match
func (lc *LikeController) HandleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		TargetID string `json:"targetId"`
		Liked    bool   `json:"liked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.TargetID == "" {
		http.Error(w, `{"error": "userId and targetId required"}`, http.StatusBadRequest)
		return
	}

	isMatch, details, err := lc.LikeService.RecordLikeAndCheckMatch(context.TODO(), request.UserID, request.TargetID, request.Liked)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReference) {
			http.Error(w, `{"error": "unknown user"}`, http.StatusBadRequest)
			return
		}
		log.Printf("Like failed: %v", err)
		http.Error(w, `{"error": "like failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":      true,
		"isMatch": isMatch,
		"match":   details,
	})
}

// HandleGetMatch returns match details for the user and the path id, if mutual
func (lc *LikeController) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	otherID := mux.Vars(r)["id"]
	if userID == "" || otherID == "" {
		http.Error(w, `{"error": "userId and id required"}`, http.StatusBadRequest)
		return
	}

	details, err := lc.LikeService.GetMatch(context.TODO(), userID, otherID)
	if err != nil {
		log.Printf("Match lookup failed: %v", err)
		http.Error(w, `{"error": "match failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"match": details})
}

// HandleGetMatches lists all mutual matches for a user
func (lc *LikeController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId required"}`, http.StatusBadRequest)
		return
	}

	matches, err := lc.LikeService.ListMatches(context.TODO(), userID)
	if err != nil {
		log.Printf("Matches lookup failed: %v", err)
		http.Error(w, `{"error": "matches failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"matches": matches})
}
