package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"vinews/internal/domain"
	"vinews/internal/repository"
	"vinews/internal/usecase"
)

// SearchRequest is the JSON body of POST /search.
type SearchRequest struct {
	Query     string `json:"query"`
	DateRange string `json:"date_range,omitempty"`
	Category  string `json:"category,omitempty"`
	Advanced  bool   `json:"advanced,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// SearchHandler exposes search and homepage fetches over HTTP. When a store
// is configured, articles from advanced searches are persisted as a side
// effect of the request.
type SearchHandler struct {
	service *usecase.SearchService
	store   repository.ArticleStore
	log     *zap.Logger
}

// NewSearchHandler builds the handler. store may be nil to disable
// persistence.
func NewSearchHandler(service *usecase.SearchService, store repository.ArticleStore, log *zap.Logger) *SearchHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SearchHandler{service: service, store: store, log: log}
}

// Register mounts the handler's routes on mux.
func (h *SearchHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/search", h.HandleSearch)
	mux.HandleFunc("/homepage", h.HandleHomepage)
}

// HandleSearch serves POST /search.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	q := domain.SearchQuery{
		Query:     req.Query,
		DateRange: domain.DateRange(req.DateRange),
		Category:  domain.Category(req.Category),
		Limit:     req.Limit,
	}

	h.log.Info("search request",
		zap.String("query", req.Query),
		zap.Bool("advanced", req.Advanced),
		zap.Int("limit", req.Limit),
	)

	if !req.Advanced {
		results, err := h.service.Search(r.Context(), q)
		if err != nil {
			h.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, results)
		return
	}

	results, err := h.service.SearchAdvanced(r.Context(), q)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if h.store != nil && len(results.Results) > 0 {
		if err := h.store.SaveArticles(r.Context(), results.Results); err != nil {
			h.log.Error("saving articles failed", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, results)
}

// HandleHomepage serves GET /homepage.
func (h *SearchHandler) HandleHomepage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	homepage, err := h.service.Homepage(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, homepage)
}

// writeError maps the error taxonomy to status codes: bad input is the
// caller's fault, upstream transport or markup trouble is a bad gateway.
func (h *SearchHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyQuery),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrUnknownCategory):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrMissingElement),
		errors.Is(err, domain.ErrUnexpectedElement):
		h.log.Error("upstream page did not match expected markup", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		h.log.Error("search failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
