// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fletching/quiver/internal/domain/achievements"
	"github.com/fletching/quiver/internal/domain/model"
)

// AchievementDependencies defines the interface for achievement reads.
type AchievementDependencies interface {
	Achievements(ctx context.Context) ([]achievements.Computed, error)
	Preview(ctx context.Context, current model.Shoot) ([]achievements.Computed, error)
}

// AchievementsHandler handles achievement list requests.
type AchievementsHandler struct {
	deps AchievementDependencies
}

// NewAchievementsHandler creates a new achievements handler.
func NewAchievementsHandler(deps AchievementDependencies) *AchievementsHandler {
	return &AchievementsHandler{deps: deps}
}

// HandleGetAchievements handles GET /achievements requests: the full
// computed list against saved history.
func (h *AchievementsHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_achievements"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	list, err := h.deps.Achievements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toAchievementResponses(list))
}

// HandlePreview handles POST /achievements/preview requests: evaluate
// with an unsaved, in-progress shoot folded in. Nothing is persisted.
func (h *AchievementsHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	const op = "api.preview_achievements"
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
	list, err := h.deps.Preview(r.Context(), req.toShoot())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toAchievementResponses(list))
}
