// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/fletching/quiver/internal/domain/achievements"
)

// DiaryDependencies defines the interface for diary timeline reads.
type DiaryDependencies interface {
	Diary(ctx context.Context) ([]achievements.TimelineItem, error)
}

// DiaryHandler handles merged timeline requests.
type DiaryHandler struct {
	deps DiaryDependencies
}

// NewDiaryHandler creates a new diary handler.
func NewDiaryHandler(deps DiaryDependencies) *DiaryHandler {
	return &DiaryHandler{deps: deps}
}

// timelineItemResponse is the wire shape of one diary entry.
type timelineItemResponse struct {
	Kind            string `json:"kind"`
	Date            string `json:"date"`
	ShootID         string `json:"shoot_id,omitempty"`
	GameType        string `json:"game_type,omitempty"`
	Note            string `json:"note,omitempty"`
	AchievementID   string `json:"achievement_id,omitempty"`
	AchievementName string `json:"achievement_name,omitempty"`
	Tier            string `json:"tier,omitempty"`
}

// HandleGetDiary handles GET /diary requests.
func (h *DiaryHandler) HandleGetDiary(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_diary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	items, err := h.deps.Diary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	resp := make([]timelineItemResponse, len(items))
	for i, item := range items {
		resp[i] = timelineItemResponse{
			Kind:            string(item.Kind),
			Date:            item.Date.Format(dateLayout),
			ShootID:         item.ShootID,
			GameType:        item.GameType,
			Note:            item.Note,
			AchievementID:   item.AchievementID,
			AchievementName: item.AchievementName,
			Tier:            string(item.Tier),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
