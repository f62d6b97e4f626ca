package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// WelcomeHandler greets visitors on the root path
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "Welcome to sayYes")
}

// HealthCheckHandler reports service liveness
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// ClientLogHandler sinks browser-side log lines into the server log so
// voice-flow issues on devices can be diagnosed without remote debugging.
func ClientLogHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Level   string          `json:"level"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"ok": false})
		return
	}
	if payload.Level == "" {
		payload.Level = "info"
	}

	if len(payload.Data) > 0 {
		log.Printf("[client] [%s] %s %s", payload.Level, payload.Message, payload.Data)
	} else {
		log.Printf("[client] [%s] %s", payload.Level, payload.Message)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
