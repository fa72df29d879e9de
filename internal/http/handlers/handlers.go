package handlers

import (
	"encoding/json"
	"net/http"
)

// Root is the liveness probe the storefront pings.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Kisan Setu backend running"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResp struct {
	Error string `json:"error"`
}

type failResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
