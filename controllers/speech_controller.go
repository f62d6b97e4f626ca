package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/godswillumukoro/say-yes/services"
)

// SpeechController proxies speech-to-text and text-to-speech requests
type SpeechController struct {
	SpeechService *services.SpeechService
}

// NewSpeechController creates a new SpeechController instance
func NewSpeechController(speechService *services.SpeechService) *SpeechController {
	return &SpeechController{SpeechService: speechService}
}

// HandleSpeechToText transcribes an uploaded audio clip
func (sc *SpeechController) HandleSpeechToText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, `{"error": "Invalid multipart form"}`, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, `{"error": "audio file required"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, `{"error": "failed to read audio"}`, http.StatusBadRequest)
		return
	}

	transcription, err := sc.SpeechService.Transcribe(context.TODO(), audio, header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("STT failed: %v", err)
		http.Error(w, `{"error": "STT failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transcription)
}

// HandleTextToSpeech synthesizes spoken audio for a text prompt
func (sc *SpeechController) HandleTextToSpeech(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Text == "" {
		http.Error(w, `{"error": "text required"}`, http.StatusBadRequest)
		return
	}

	audio, err := sc.SpeechService.Synthesize(context.TODO(), payload.Text)
	if err != nil {
		log.Printf("TTS failed: %v", err)
		http.Error(w, `{"error": "TTS failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Write(audio)
}
