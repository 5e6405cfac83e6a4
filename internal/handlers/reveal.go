package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/yjb94/CulinaryClassWars/internal/models"
	"github.com/yjb94/CulinaryClassWars/internal/render"
	"github.com/yjb94/CulinaryClassWars/internal/sse"
)

// HandleAdvance moves the show's reveal to its next stage
func (ctx *Context) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	ctx.hostAction(w, r, "/advance/", func(show *models.Show) {
		show.Reveal.Advance()
	})
}

// HandleReset redraws the roster and rewinds the reveal to the first stage
func (ctx *Context) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx.hostAction(w, r, "/reset/", func(show *models.Show) {
		show.Reveal.Initialize()
	})
}

// hostAction runs action on the show named after prefix when the caller is
// its host
func (ctx *Context) hostAction(w http.ResponseWriter, r *http.Request, prefix string, action func(*models.Show)) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, prefix)
	show, viewerID, err := ctx.getShowAndViewer(r, code)
	if err != nil {
		if debug {
			log.Printf("hostAction %s%s: %v", prefix, code, err)
		}
		http.Error(w, "Show not found", http.StatusNotFound)
		return
	}

	show.RLock()
	isHost := show.Host == viewerID
	show.RUnlock()
	if !isHost {
		http.Error(w, "Only host can control the show", http.StatusForbidden)
		return
	}

	action(show)

	if debug {
		snap := show.Reveal.Snapshot()
		log.Printf("hostAction %s%s: stage=%s message=%q", prefix, code, snap.Stage, snap.Message)
	}
	w.WriteHeader(http.StatusNoContent)
}

// publishSnapshot pushes the grid and status line of snap to every client
// of the show, dropping snapshots older than the last one sent. Animation
// frames may be skipped by slow clients; a settled snapshot has no later frame
// to catch up with, so it waits for room like any other broadcast.
func publishSnapshot(show *models.Show, snap models.Snapshot) {
	show.PublishIfNewer(snap.Version, func() {
		grid := render.Grid(snap)
		message := render.Message(snap)
		if snap.Animating {
			sse.BroadcastFrame(show,
				models.SSEMessage{Event: sse.EventGridUpdate, Data: grid},
				models.SSEMessage{Event: sse.EventMessageUpdate, Data: message},
			)
			return
		}
		sse.Broadcast(show, sse.EventGridUpdate, grid)
		sse.Broadcast(show, sse.EventMessageUpdate, message)
	})
}
