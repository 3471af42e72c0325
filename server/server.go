// Package server exposes the search service over HTTP: a JSON API and
// an embedded browser page.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ytagent/internal/config"
	"ytagent/youtube"
)

// Version is the reported service version.
const Version = "1.0.0"

//go:embed web/index.html
var webFS embed.FS

// Server wires the search client into HTTP handlers.
type Server struct {
	cfg      *config.Config
	searcher youtube.Searcher
	channels youtube.ChannelLister
	log      *slog.Logger
	httpSrv  *http.Server
}

// New creates a Server serving the given searcher and channel lister.
func New(cfg *config.Config, searcher youtube.Searcher, channels youtube.ChannelLister, log *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		searcher: searcher,
		channels: channels,
		log:      log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /channels/{id}/videos", s.handleChannelVideos)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /api", s.handleAPIInfo)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	s.httpSrv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withMiddleware(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 10*time.Second,
	}
	return s
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run serves HTTP until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", s.cfg.Addr))
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}

type searchResponse struct {
	Results []youtube.Video `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	audience := params.Get("audience")
	if audience == "" {
		audience = s.cfg.DefaultAudience
	}

	maxResults := s.cfg.MaxResults
	if raw := params.Get("max_results"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "max_results must be an integer")
			return
		}
		maxResults = n
	}

	q := youtube.Query{
		Text:       params.Get("query"),
		MaxResults: maxResults,
		Audience:   youtube.Audience(audience),
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	videos, err := s.searcher.Search(ctx, q)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, searchResponse{Results: videos})
}

func (s *Server) handleChannelVideos(w http.ResponseWriter, r *http.Request) {
	channelID := r.PathValue("id")

	maxResults := s.cfg.MaxResults
	if raw := r.URL.Query().Get("max_results"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "max_results must be an integer")
			return
		}
		maxResults = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	videos, err := s.channels.ChannelVideos(ctx, channelID, maxResults)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, searchResponse{Results: videos})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "ytagent",
	})
}

func (s *Server) handleAPIInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "ytagent API is running",
		"version": Version,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// writeSearchError maps the error taxonomy onto HTTP status classes.
// Provider failures get a generic message so upstream details, including
// anything derived from the API key, never reach the client.
func (s *Server) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, youtube.ErrEmptyQuery):
		s.writeError(w, http.StatusBadRequest, "query must not be empty")
	case errors.Is(err, youtube.ErrInvalidAudience):
		s.writeError(w, http.StatusBadRequest, "audience must be one of beginner, intermediate, advanced")
	case errors.Is(err, youtube.ErrChannelNotFound):
		s.writeError(w, http.StatusNotFound, "channel not found")
	default:
		var perr *youtube.ProviderError
		if errors.As(err, &perr) {
			s.log.Error("provider call failed",
				slog.String("op", perr.Op),
				slog.Any("error", err),
				slog.String("request_id", requestIDFrom(r.Context())),
			)
			s.writeError(w, http.StatusBadGateway, "search provider unavailable")
			return
		}
		s.log.Error("search failed",
			slog.Any("error", err),
			slog.String("request_id", requestIDFrom(r.Context())),
		)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("encode response", slog.Any("error", err))
	}
}
