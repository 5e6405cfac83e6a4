package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yjb94/CulinaryClassWars/internal/game"
	"github.com/yjb94/CulinaryClassWars/internal/models"
	"github.com/yjb94/CulinaryClassWars/internal/render"
	"github.com/yjb94/CulinaryClassWars/internal/sse"
)

// HandleCreateShow creates a new show hosted by the caller
func (ctx *Context) HandleCreateShow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.ParseForm()
	hostName := strings.TrimSpace(r.FormValue("name"))
	if hostName == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	viewerID := uuid.New().String()
	code := game.GetUniqueShowCode(ctx.ShowStore)

	show := ctx.newShow(code, viewerID)
	show.Viewers[viewerID] = &models.Viewer{ID: viewerID, Name: hostName}
	ctx.ShowStore.Set(code, show)

	log.Printf("Created show: code=%s host=%s", code, viewerID)

	setViewerCookie(w, viewerID)
	w.Header().Set("HX-Redirect", "/show/"+code)
	w.WriteHeader(http.StatusOK)
}

// newShow builds a show whose reveal machine publishes every change to the
// show's SSE clients
func (ctx *Context) newShow(code, hostID string) *models.Show {
	show := &models.Show{
		Code:    code,
		Host:    hostID,
		Viewers: make(map[string]*models.Viewer),
	}
	opts := append([]game.Option{}, ctx.Machine...)
	opts = append(opts, game.WithListener(func(snap models.Snapshot) {
		publishSnapshot(show, snap)
	}))
	show.Reveal = game.NewMachine(opts...)
	return show
}

// HandleJoinShow lets a viewer join an existing show
func (ctx *Context) HandleJoinShow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.ParseForm()
	code := strings.ToUpper(strings.TrimSpace(r.FormValue("code")))
	name := strings.TrimSpace(r.FormValue("name"))

	if code == "" || name == "" {
		http.Error(w, "Show code and name are required", http.StatusBadRequest)
		return
	}

	show, exists := ctx.ShowStore.Get(code)
	if !exists {
		http.Error(w, "Show not found", http.StatusNotFound)
		return
	}

	viewerID := uuid.New().String()
	show.Lock()
	show.Viewers[viewerID] = &models.Viewer{ID: viewerID, Name: name}
	viewerCount := len(show.Viewers)
	show.Unlock()

	log.Printf("Viewer joined show: code=%s viewerID=%s name=%s", code, viewerID, name)

	sse.Broadcast(show, sse.EventViewerUpdate, render.ViewerCount(viewerCount))

	setViewerCookie(w, viewerID)
	w.Header().Set("HX-Redirect", "/show/"+code)
	w.WriteHeader(http.StatusOK)
}

// HandleShow displays the reveal screen
func (ctx *Context) HandleShow(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/show/")

	if !ctx.ShowStore.Exists(code) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	show, viewerID, err := ctx.getShowAndViewer(r, code)
	if err != nil {
		// Probably arrived through a shared link: offer the join form
		http.Redirect(w, r, "/?code="+code, http.StatusSeeOther)
		return
	}

	snap := show.Reveal.Snapshot()

	show.RLock()
	data := struct {
		Code        string
		IsHost      bool
		JoinURL     string
		Grid        template.HTML
		Message     template.HTML
		Controls    template.HTML
		ViewerCount template.HTML
	}{
		Code:        show.Code,
		IsHost:      show.Host == viewerID,
		JoinURL:     ctx.joinURL(show.Code),
		Grid:        template.HTML(render.Grid(snap)),
		Message:     template.HTML(render.Message(snap)),
		Controls:    template.HTML(render.Controls(show, viewerID)),
		ViewerCount: template.HTML(render.ViewerCount(len(show.Viewers))),
	}
	show.RUnlock()

	ctx.Templates.ExecuteTemplate(w, "show.html", data)
}

// HandleCloseShow stops the reveal and deletes the show
func (ctx *Context) HandleCloseShow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/close-show/")

	show, exists := ctx.ShowStore.Get(code)
	if !exists {
		http.Error(w, "Show not found", http.StatusNotFound)
		return
	}

	// Get viewer ID from cookie
	cookie, err := r.Cookie(viewerCookie)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	viewerID := cookie.Value

	show.RLock()
	isHost := show.Host == viewerID
	show.RUnlock()
	if !isHost {
		http.Error(w, "Only host can close show", http.StatusForbidden)
		return
	}

	// Broadcast closure
	sse.Broadcast(show, sse.EventNavRedirect, render.RedirectSnippet("/"))

	// Delete show, stopping its machine
	ctx.ShowStore.Delete(code)
	log.Printf("Closed show: code=%s", code)

	w.Header().Set("HX-Redirect", "/")
	w.WriteHeader(http.StatusOK)
}
