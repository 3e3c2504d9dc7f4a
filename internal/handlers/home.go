package handlers

import (
	"io"
	"net/http"
)

// Liveness response, no side effects
func handleHome() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "Real Estate API Running 🚀")
	})
}
