// Package server exposes the translation pipeline over HTTP: JSON endpoints
// for batch translation and file upload, a response schema endpoint, static
// clip and output serving, and a websocket surface for live sessions.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	translation "github.com/srinithi0406/ISL/core"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	translator *translation.Translator

	addr      string
	assetsDir string
	outputDir string
	uploadDir string

	upgrader websocket.Upgrader
}

type Option func(*Server)

func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithAssetsDir serves the sign clip catalog under /assets/ so browser
// clients can play queued clips by URL.
func WithAssetsDir(dir string) Option {
	return func(s *Server) { s.assetsDir = dir }
}

func WithOutputDir(dir string) Option {
	return func(s *Server) { s.outputDir = dir }
}

func New(translator *translation.Translator, opts ...Option) *Server {
	s := &Server{
		translator: translator,
		addr:       ":8000",
		outputDir:  os.TempDir(),
		uploadDir:  os.TempDir(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/translate", s.handleTranslateText)
	mux.HandleFunc("/api/translate/upload", s.handleTranslateUpload)
	mux.HandleFunc("/api/schema", s.handleSchema)
	mux.HandleFunc("/ws/live", s.handleLive)

	if s.assetsDir != "" {
		mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.assetsDir))))
	}
	mux.Handle("/outputs/", http.StripPrefix("/outputs/", http.FileServer(http.Dir(s.outputDir))))

	return otelhttp.NewHandler(mux, "isl-server")
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{Addr: s.addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("failed to shut down cleanly", "error", err)
		}
	}()

	logger.Info("listening", "addr", s.addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
