package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/yjb94/CulinaryClassWars/internal/game"
	"github.com/yjb94/CulinaryClassWars/internal/models"
	"github.com/yjb94/CulinaryClassWars/internal/render"
	"github.com/yjb94/CulinaryClassWars/internal/sse"
)

// HandleSSE streams reveal updates via Server-Sent Events
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	if debug {
		log.Printf("handleSSE called: %s", r.URL.Path)
	}

	code := strings.Trim(strings.TrimPrefix(r.URL.Path, "/sse/"), "/")
	show, viewerID, err := ctx.getShowAndViewer(r, code)
	if err != nil {
		if debug {
			log.Printf("handleSSE: %s: %v, sending nav-redirect to home", code, err)
		}
		// Not authorized or show gone: instruct client to navigate home via HTMX snippet
		writeSSEHeaders(w)
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventNavRedirect, render.RedirectSnippet("/"))
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
		return
	}

	writeSSEHeaders(w)
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	// Immediately flush headers to establish SSE connection
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	// Create client channel
	clientChan := make(chan models.SSEMessage, game.SSEBufferSize)
	sse.AddClient(show, clientChan, viewerID)
	defer sse.RemoveClient(show, clientChan)

	// Send initial state
	snap := show.Reveal.Snapshot()
	show.RLock()
	controlsHTML := render.Controls(show, viewerID)
	viewerCountHTML := render.ViewerCount(len(show.Viewers))
	clientCount := show.SSEClientCount()
	show.RUnlock()
	if debug {
		log.Printf("handleSSE: viewer %s connected to %s, now have %d total clients", viewerID, code, clientCount)
	}

	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventGridUpdate, render.Grid(snap))
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventMessageUpdate, render.Message(snap))
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventControlsUpdate, controlsHTML)
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventViewerUpdate, viewerCountHTML)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			log.Printf("handleSSE: viewer %s disconnected", viewerID)
			return
		case msg := <-clientChan:
			if debug {
				log.Printf("handleSSE: sending event=%s to viewer %s", msg.Event, viewerID)
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}
}
