// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/fletching/quiver/internal/domain/achievements"
)

// ShootAchievementDependencies defines the interface for attribution reads.
type ShootAchievementDependencies interface {
	ShootAchievements(ctx context.Context, shootID string) ([]achievements.Computed, error)
}

// ShootAchievementsHandler answers which achievements a shoot earned.
type ShootAchievementsHandler struct {
	deps ShootAchievementDependencies
}

// NewShootAchievementsHandler creates a new attribution handler.
func NewShootAchievementsHandler(deps ShootAchievementDependencies) *ShootAchievementsHandler {
	return &ShootAchievementsHandler{deps: deps}
}

// HandleGetShootAchievements handles GET /shoots/{id}/achievements.
func (h *ShootAchievementsHandler) HandleGetShootAchievements(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_shoot_achievements"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/shoots/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "achievements" {
		http.NotFound(w, r)
		return
	}
	list, err := h.deps.ShootAchievements(r.Context(), parts[0])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toAchievementResponses(list))
}
