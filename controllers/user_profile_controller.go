package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/godswillumukoro/say-yes/models"
	"github.com/godswillumukoro/say-yes/services"
)

// UserProfileController handles onboarding, the candidate feed, and the
// admin photo operations.
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new UserProfileController instance
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// HandleOnboarding creates a user profile from the voice onboarding flow
func (upc *UserProfileController) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name         string   `json:"name"`
		Age          int      `json:"age"`
		Bio          string   `json:"bio"`
		Email        string   `json:"email"`
		Phone        string   `json:"phone"`
		Photos       []string `json:"photos"`
		Gender       string   `json:"gender"`
		InterestedIn string   `json:"interestedIn"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.Name == "" || request.Age <= 0 {
		http.Error(w, `{"error": "name and age required"}`, http.StatusBadRequest)
		return
	}

	profile, err := upc.UserProfileService.AddUserProfile(context.TODO(), models.UserProfile{
		Name:         request.Name,
		Age:          request.Age,
		Bio:          request.Bio,
		Email:        request.Email,
		Phone:        request.Phone,
		Photos:       request.Photos,
		Gender:       request.Gender,
		InterestedIn: request.InterestedIn,
	})
	if err != nil {
		log.Printf("Onboarding failed: %v", err)
		http.Error(w, `{"error": "onboarding failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"user": profile.Public()})
}

// HandleGetCandidates returns the swipe feed for a user
func (upc *UserProfileController) HandleGetCandidates(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId required"}`, http.StatusBadRequest)
		return
	}

	candidates, err := upc.UserProfileService.GetCandidates(context.TODO(), userID)
	if err != nil {
		log.Printf("Failed to fetch candidates: %v", err)
		http.Error(w, `{"error": "candidates failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"candidates": candidates})
}

// HandleSetPhotos replaces a user's full photo list (admin)
func (upc *UserProfileController) HandleSetPhotos(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string   `json:"userId"`
		Photos []string `json:"photos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.Photos == nil {
		http.Error(w, `{"error": "userId and photos[] required"}`, http.StatusBadRequest)
		return
	}

	// Only accept URLs pointing at our asset storage.
	clean := make([]string, 0, len(request.Photos))
	for _, photo := range request.Photos {
		if isAssetURL(photo) {
			clean = append(clean, photo)
		}
	}

	profile, err := upc.UserProfileService.SetPhotos(context.TODO(), request.UserID, clean)
	if err != nil {
		log.Printf("Failed to set photos: %v", err)
		http.Error(w, `{"error": "set-photos failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":   true,
		"user": map[string]interface{}{"id": profile.UserID, "photos": profile.Photos},
	})
}

// HandleAddPhoto appends one photo to a user's profile (admin)
func (upc *UserProfileController) HandleAddPhoto(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Photo  string `json:"photo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserID == "" || !isAssetURL(request.Photo) {
		http.Error(w, `{"error": "userId and an asset photo URL required"}`, http.StatusBadRequest)
		return
	}

	profile, err := upc.UserProfileService.AddPhoto(context.TODO(), request.UserID, request.Photo)
	if err != nil {
		log.Printf("Failed to add photo: %v", err)
		http.Error(w, `{"error": "add-photo failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":   true,
		"user": map[string]interface{}{"id": profile.UserID, "photos": profile.Photos},
	})
}

func isAssetURL(photo string) bool {
	return strings.HasPrefix(photo, "https://") && strings.Contains(photo, "/assets/")
}
