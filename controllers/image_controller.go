package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/godswillumukoro/say-yes/services"

	"github.com/google/uuid"
)

// ImageController proxies AI photo generation
type ImageController struct {
	ImageService *services.ImageService
	HTTPClient   *http.Client
}

// NewImageController creates a new ImageController instance
func NewImageController(imageService *services.ImageService) *ImageController {
	return &ImageController{
		ImageService: imageService,
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// HandleGeneratePhotos generates refined portrait photos from a prompt and
// an optional input image URL
func (ic *ImageController) HandleGeneratePhotos(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Prompt        string `json:"prompt"`
		InputImageURL string `json:"input_image_url"`
		Num           int    `json:"num"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	var inputImage []byte
	var inputMimeType string
	if payload.InputImageURL != "" {
		data, mimeType, err := ic.fetchInputImage(payload.InputImageURL)
		if err != nil {
			log.Printf("Failed to fetch input image: %v", err)
		} else {
			inputImage = data
			inputMimeType = mimeType
		}
	}

	photos, err := ic.ImageService.GeneratePhotos(context.TODO(), payload.Prompt, inputImage, inputMimeType, payload.Num)
	if err != nil {
		log.Printf("Image generation failed: %v", err)
		http.Error(w, `{"error": "image generation failed"}`, http.StatusBadGateway)
		return
	}
	if photos == nil {
		photos = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"requestId": uuid.NewString(),
		"photos":    photos,
	})
}

// fetchInputImage downloads the source photo to inline it for the model.
// Only our own asset storage is accepted as a source.
func (ic *ImageController) fetchInputImage(url string) ([]byte, string, error) {
	if !strings.Contains(url, "/assets/") && !strings.Contains(url, "/profile-pics/") {
		return nil, "", fmt.Errorf("refusing to fetch non-asset image URL")
	}

	resp, err := ic.HTTPClient.Get(url)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}
