// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/fletching/quiver/internal/domain/dedupe"
	"github.com/fletching/quiver/internal/domain/model"
)

// ShootDependencies defines the interface for shoot intake dependencies.
type ShootDependencies interface {
	dedupe.Deduper
	Enqueue(ctx context.Context, s model.Shoot) bool
}

// ShootsHandler handles shoot submissions.
type ShootsHandler struct {
	deps ShootDependencies
}

// NewShootsHandler creates a new shoots handler.
func NewShootsHandler(deps ShootDependencies) *ShootsHandler {
	return &ShootsHandler{deps: deps}
}

// HandlePostShoot handles POST /shoots requests.
func (h *ShootsHandler) HandlePostShoot(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_shoot"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req shootRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	s := req.toShoot()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	// Idempotency check - mark as seen first
	if h.deps.SeenAndRecord(r.Context(), s.ID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", ID: s.ID, Duplicate: true})
		return
	}

	// Try to enqueue for async processing
	if ok := h.deps.Enqueue(r.Context(), s); !ok {
		// Roll back the "seen" status since enqueue failed
		h.deps.Unrecord(r.Context(), s.ID)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", ID: s.ID, Duplicate: false})
}
