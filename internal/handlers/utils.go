package handlers

import (
	"fmt"
	"net/http"

	"github.com/yjb94/CulinaryClassWars/internal/models"
)

// viewerCookie holds the viewer session ID
const viewerCookie = "viewer_id"

// getShowAndViewer validates membership using session cookie
func (ctx *Context) getShowAndViewer(r *http.Request, code string) (*models.Show, string, error) {
	show, exists := ctx.ShowStore.Get(code)
	if !exists {
		return nil, "", fmt.Errorf("show not found")
	}
	cookie, err := r.Cookie(viewerCookie)
	if err != nil {
		return nil, "", fmt.Errorf("no session")
	}
	viewerID := cookie.Value
	show.RLock()
	_, member := show.Viewers[viewerID]
	show.RUnlock()
	if !member {
		return nil, "", fmt.Errorf("not a viewer")
	}
	return show, viewerID, nil
}

// setViewerCookie stores the viewer session
func setViewerCookie(w http.ResponseWriter, viewerID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     viewerCookie,
		Value:    viewerID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		// Secure: true, // enable when serving over HTTPS
	})
}

// writeSSEHeaders sets the headers of an event stream response
func writeSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}
