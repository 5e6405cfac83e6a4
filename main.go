package main

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/yjb94/CulinaryClassWars/internal/config"
	"github.com/yjb94/CulinaryClassWars/internal/handlers"
	"github.com/yjb94/CulinaryClassWars/internal/store"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Parse templates
	templates, err := template.ParseGlob(filepath.Join(cfg.TemplatesDir, "*.html"))
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	showStore := store.NewShowStore()
	h := &handlers.Context{
		ShowStore: showStore,
		Templates: templates,
		BaseURL:   cfg.BaseURL,
	}

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.HandleIndex)
	mux.HandleFunc("/redirect", h.HandleRedirect)
	mux.HandleFunc("/create-show", h.HandleCreateShow)
	mux.HandleFunc("/join-show", h.HandleJoinShow)
	mux.HandleFunc("/show/", h.HandleShow)
	mux.HandleFunc("/advance/", h.HandleAdvance)
	mux.HandleFunc("/reset/", h.HandleReset)
	mux.HandleFunc("/close-show/", h.HandleCloseShow)
	mux.HandleFunc("/sse/", h.HandleSSE)
	mux.HandleFunc("/qr/", h.HandleQRCode)

	// Static files
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	var handler http.Handler = mux
	if cfg.Debug {
		handler = handlers.LogRequests(mux)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Request contexts derive from ctx so open SSE streams end on shutdown
	srv := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     handler,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		log.Printf("Server starting on %s", cfg.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down, closing %d show(s)", len(showStore.Codes()))

	// Stop reveal animations first so no tick publishes into closing streams
	showStore.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}
