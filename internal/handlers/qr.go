package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/yjb94/CulinaryClassWars/internal/render"
)

// HandleQRCode serves a PNG QR code of the show's join link
func (ctx *Context) HandleQRCode(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/qr/"), ".png")
	if !ctx.ShowStore.Exists(code) {
		http.NotFound(w, r)
		return
	}

	png, err := render.JoinQRCode(ctx.joinURL(code))
	if err != nil {
		log.Printf("HandleQRCode: encoding %s: %v", code, err)
		http.Error(w, "Could not render QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
