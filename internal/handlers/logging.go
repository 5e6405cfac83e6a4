package handlers

import (
	"log"
	"net/http"
	"time"
)

// LogRequests logs every request and how long its handler ran. The
// ResponseWriter is passed through untouched so SSE streams can still flush.
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}
