package handlers

import (
	"html/template"
	"net/http"
	"os"
	"strings"

	"github.com/yjb94/CulinaryClassWars/internal/game"
	"github.com/yjb94/CulinaryClassWars/internal/store"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Context holds shared application dependencies
type Context struct {
	ShowStore *store.ShowStore
	Templates *template.Template
	BaseURL   string        // public origin used in join links
	Machine   []game.Option // options for every new reveal machine
}

// HandleIndex serves the landing page
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := struct {
		Code string
	}{
		Code: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("code"))),
	}
	ctx.Templates.ExecuteTemplate(w, "index.html", data)
}

// HandleRedirect answers HTMX redirect snippets with an HX-Location header
func (ctx *Context) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	// local paths only; browsers read "//" and "/\" as another host
	if !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") || strings.HasPrefix(to, "/\\") {
		to = "/"
	}
	w.Header().Set("HX-Location", to)
	w.WriteHeader(http.StatusOK)
}

// joinURL returns the public link to a show
func (ctx *Context) joinURL(code string) string {
	return strings.TrimSuffix(ctx.BaseURL, "/") + "/show/" + code
}
