// Package chi is the HTTP transport: request decoding, routing, and the
// JSON response shapes of the public search API.
package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/galleria-cloud/galleria/internal/domain"
	searchuc "github.com/galleria-cloud/galleria/internal/usecase/search"
)

// Pinger checks store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server exposes the search service over HTTP.
type Server struct {
	search *searchuc.Service
	store  Pinger
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, store Pinger, logger *zap.Logger) *Server {
	return &Server{search: search, store: store, logger: logger}
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/search", s.Search)
		r.Post("/search/image", s.SearchByImage)
		r.Post("/search/mood", s.SearchByMood)
		r.Post("/search/color", s.SearchByColor)
		r.Post("/search/style", s.SearchByStyle)
		r.Get("/suggestions", s.Suggestions)
		r.Get("/trending", s.Trending)
	})
	r.Get("/healthz", s.Healthz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// Search handles POST /v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "invalid_query", "query is required")
		return
	}

	results := s.search.Search(r.Context(), req.Query, filtersFromDTO(req.Filters), contextFromDTO(req.Context), req.Limit)
	writeJSON(w, http.StatusOK, resultsToResponse(results))
}

// SearchByImage handles POST /v1/search/image.
func (s *Server) SearchByImage(w http.ResponseWriter, r *http.Request) {
	var req imageSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}
	if req.ImageURL == "" {
		writeError(w, http.StatusBadRequest, "invalid_query", "image_url is required")
		return
	}

	results := s.search.SearchByImage(r.Context(), req.ImageURL, filtersFromDTO(req.Filters), contextFromDTO(req.Context))
	writeJSON(w, http.StatusOK, resultsToResponse(results))
}

// SearchByMood handles POST /v1/search/mood.
func (s *Server) SearchByMood(w http.ResponseWriter, r *http.Request) {
	s.templated(w, r, "mood", func(req *templatedSearchRequest) (string, bool) {
		return req.Mood, req.Mood != ""
	}, s.search.SearchByMood)
}

// SearchByColor handles POST /v1/search/color.
func (s *Server) SearchByColor(w http.ResponseWriter, r *http.Request) {
	s.templated(w, r, "color", func(req *templatedSearchRequest) (string, bool) {
		return req.Color, req.Color != ""
	}, s.search.SearchByColor)
}

// SearchByStyle handles POST /v1/search/style.
func (s *Server) SearchByStyle(w http.ResponseWriter, r *http.Request) {
	s.templated(w, r, "style", func(req *templatedSearchRequest) (string, bool) {
		return req.Style, req.Style != ""
	}, s.search.SearchByStyle)
}

// Suggestions handles GET /v1/suggestions.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "invalid_query", "q is required")
		return
	}
	limit := queryInt(r, "limit")

	items := s.search.GetSearchSuggestions(r.Context(), query, limit)
	writeJSON(w, http.StatusOK, termListResponse{Items: items})
}

// Trending handles GET /v1/trending.
func (s *Server) Trending(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")

	items := s.search.GetTrendingSearches(r.Context(), limit)
	writeJSON(w, http.StatusOK, termListResponse{Items: items})
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type searchFn func(ctx context.Context, term string, filters *domain.Filters, sctx *domain.SearchContext, limit int) []domain.Result

func (s *Server) templated(
	w http.ResponseWriter,
	r *http.Request,
	field string,
	extract func(*templatedSearchRequest) (string, bool),
	run searchFn,
) {
	var req templatedSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}
	term, ok := extract(&req)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_query", field+" is required")
		return
	}

	results := run(r.Context(), term, filtersFromDTO(req.Filters), contextFromDTO(req.Context), req.Limit)
	writeJSON(w, http.StatusOK, resultsToResponse(results))
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
