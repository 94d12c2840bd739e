package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
	"github.com/cypherlabdev/edge-finder-service/internal/service"
)

// maxSnapshotBytes bounds the body of a compute request
const maxSnapshotBytes = 10 << 20

// EdgesHandler handles HTTP requests for edge detection and cached edges
type EdgesHandler struct {
	service *service.EdgeService
	logger  zerolog.Logger
}

// NewEdgesHandler creates a new edges HTTP handler
func NewEdgesHandler(service *service.EdgeService, logger zerolog.Logger) *EdgesHandler {
	return &EdgesHandler{
		service: service,
		logger:  logger.With().Str("component", "edges_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *EdgesHandler) RegisterRoutes(mux *http.ServeMux) {
	// POST /api/v1/edges/compute - Run a computation pass over a snapshot
	mux.HandleFunc("/api/v1/edges/compute", h.handleCompute)

	// GET /api/v1/edges/:edge_id - Get a cached edge
	mux.HandleFunc("/api/v1/edges/", h.handleGetEdge)

	// GET /api/v1/matches/:match_id/edges - Get all cached edges for a match
	mux.HandleFunc("/api/v1/matches/", h.handleGetMatchEdges)
}

// handleCompute handles POST /api/v1/edges/compute
func (h *EdgesHandler) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var snapshot models.OfferSnapshot
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSnapshotBytes)).Decode(&snapshot); err != nil {
		h.logger.Debug().Err(err).Msg("invalid snapshot body")
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.service.ProcessSnapshot(r.Context(), &snapshot)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("batch_id", snapshot.BatchID).
			Msg("failed to compute edges")
		h.errorResponse(w, http.StatusInternalServerError, "failed to compute edges")
		return
	}

	h.jsonResponse(w, http.StatusOK, report)
}

// handleGetEdge handles GET /api/v1/edges/:edge_id
func (h *EdgesHandler) handleGetEdge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	edgeID := strings.TrimPrefix(r.URL.Path, "/api/v1/edges/")
	if edgeID == "" || strings.Contains(edgeID, "/") {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/edges/:edge_id")
		return
	}

	edge, err := h.service.GetEdge(r.Context(), edgeID)
	if err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			h.logger.Debug().Str("edge_id", edgeID).Msg("edge not found")
			h.errorResponse(w, http.StatusNotFound, "edge not found")
			return
		}
		h.logger.Error().
			Err(err).
			Str("edge_id", edgeID).
			Msg("failed to retrieve edge")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve edge")
		return
	}

	h.jsonResponse(w, http.StatusOK, edge)
}

// handleGetMatchEdges handles GET /api/v1/matches/:match_id/edges
func (h *EdgesHandler) handleGetMatchEdges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Parse path: /api/v1/matches/:match_id/edges
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/matches/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "edges" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/matches/:match_id/edges")
		return
	}

	matchID := parts[0]
	if matchID == "" {
		h.errorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	edges, err := h.service.GetEdgesByMatch(r.Context(), matchID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("match_id", matchID).
			Msg("failed to retrieve match edges")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve edges")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"match_id": matchID,
		"count":    len(edges),
		"edges":    edges,
	})
}

// jsonResponse writes a JSON response
func (h *EdgesHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *EdgesHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
