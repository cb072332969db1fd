// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/fletching/quiver/internal/domain/achievements"
)

// GroupDependencies defines the interface for tier rollup reads.
type GroupDependencies interface {
	GroupProgress(ctx context.Context) (achievements.GroupProgress, error)
}

// GroupsHandler handles tier rollup requests.
type GroupsHandler struct {
	deps GroupDependencies
}

// NewGroupsHandler creates a new groups handler.
func NewGroupsHandler(deps GroupDependencies) *GroupsHandler {
	return &GroupsHandler{deps: deps}
}

// tierProgressResponse is the wire shape of one tier tally.
type tierProgressResponse struct {
	Earned int `json:"earned"`
	Total  int `json:"total"`
}

type groupProgressResponse struct {
	Tiers             map[string]tierProgressResponse `json:"tiers"`
	TotalEarned       int                             `json:"total_earned"`
	TotalAchievements int                             `json:"total_achievements"`
}

// HandleGetGroups handles GET /achievements/groups requests.
func (h *GroupsHandler) HandleGetGroups(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_groups"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	gp, err := h.deps.GroupProgress(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	resp := groupProgressResponse{
		Tiers:             make(map[string]tierProgressResponse, len(gp.Tiers)),
		TotalEarned:       gp.TotalEarned,
		TotalAchievements: gp.TotalAchievements,
	}
	for tier, tp := range gp.Tiers {
		resp.Tiers[string(tier)] = tierProgressResponse{Earned: tp.Earned, Total: tp.Total}
	}
	writeJSON(w, http.StatusOK, resp)
}
