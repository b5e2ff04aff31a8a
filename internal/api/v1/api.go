// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vmunix/premiere/internal/browse"
	"github.com/vmunix/premiere/internal/details"
)

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
}

// New creates a v1 API server.
func New(deps ServerDeps) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &Server{deps: deps}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Results
	mux.HandleFunc("POST /api/v1/search", s.search)
	mux.HandleFunc("POST /api/v1/search/more", s.loadMore)
	mux.HandleFunc("POST /api/v1/search/proximity", s.reportProximity)
	mux.HandleFunc("GET /api/v1/results", s.results)

	// Detail view
	mux.HandleFunc("POST /api/v1/details", s.openDetails)
	mux.HandleFunc("GET /api/v1/details", s.getDetails)
	mux.HandleFunc("DELETE /api/v1/details", s.closeDetails)

	// System
	mux.HandleFunc("GET /api/v1/events", s.requireEventLog(s.listEvents))
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if req.Refresh && s.deps.SearchCache != nil && strings.TrimSpace(req.Query) != "" {
		if err := s.deps.SearchCache.Invalidate(r.Context(), req.Query); err != nil {
			writeError(w, http.StatusInternalServerError, "CACHE_ERROR", err.Error())
			return
		}
	}

	if err := s.deps.Browser.Search(r.Context(), req.Query); err != nil {
		if errors.Is(err, browse.ErrEmptyQuery) {
			writeError(w, http.StatusBadRequest, "EMPTY_QUERY", browse.MsgEmptyQuery)
			return
		}
		writeError(w, http.StatusInternalServerError, "SEARCH_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Browser.Snapshot())
}

func (s *Server) loadMore(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Browser.LoadMore(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "SEARCH_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Browser.Snapshot())
}

func (s *Server) reportProximity(w http.ResponseWriter, r *http.Request) {
	if s.deps.Proximity == nil {
		writeError(w, http.StatusServiceUnavailable, "NO_PROXIMITY", "proximity signals not configured")
		return
	}
	var req proximityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, proximityResponse{Queued: s.deps.Proximity.Report(req.NearEnd)})
}

func (s *Server) results(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Browser.Snapshot())
}

func (s *Server) openDetails(w http.ResponseWriter, r *http.Request) {
	var req detailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	var item browse.ResultItem
	switch {
	case req.Item != nil:
		item = *req.Item
	case strings.TrimSpace(req.IMDbID) != "":
		id := strings.TrimSpace(req.IMDbID)
		found, ok := s.deps.Browser.Find(id)
		if !ok {
			found = browse.ResultItem{Key: id, IMDbID: id}
		}
		item = found
	}

	if err := s.deps.Details.Load(r.Context(), item); err != nil {
		if errors.Is(err, details.ErrNoDetails) {
			writeError(w, http.StatusBadRequest, "NO_DETAILS", details.MsgNoDetails)
			return
		}
		writeError(w, http.StatusInternalServerError, "DETAILS_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Details.View())
}

func (s *Server) getDetails(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Details.View())
}

func (s *Server) closeDetails(w http.ResponseWriter, r *http.Request) {
	s.deps.Details.Close()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	services := s.deps.Services
	if services == nil {
		services = map[string]bool{}
	}
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:   "ok",
		Version:  s.deps.Version,
		Services: services,
	})
}
