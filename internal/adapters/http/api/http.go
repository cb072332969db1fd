// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fletching/quiver/internal/domain/achievements"
	"github.com/fletching/quiver/internal/domain/dedupe"
	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/scoring"
)

// dateLayout is the wire format for calendar days.
const dateLayout = "2006-01-02"

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	dedupe.Deduper

	// Enqueue pushes a shoot submission for async processing.
	// Returns false on backpressure.
	Enqueue(ctx context.Context, s model.Shoot) bool

	// Read operations expose computed achievement data.
	Achievements(ctx context.Context) ([]achievements.Computed, error)
	Preview(ctx context.Context, current model.Shoot) ([]achievements.Computed, error)
	GroupProgress(ctx context.Context) (achievements.GroupProgress, error)
	ShootAchievements(ctx context.Context, shootID string) ([]achievements.Computed, error)
	Diary(ctx context.Context) ([]achievements.TimelineItem, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	shootsHandler       *ShootsHandler
	achievementsHandler *AchievementsHandler
	groupsHandler       *GroupsHandler
	shootAwardsHandler  *ShootAchievementsHandler
	diaryHandler        *DiaryHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		shootsHandler:       NewShootsHandler(deps),
		achievementsHandler: NewAchievementsHandler(deps),
		groupsHandler:       NewGroupsHandler(deps),
		shootAwardsHandler:  NewShootAchievementsHandler(deps),
		diaryHandler:        NewDiaryHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	_ = ctx
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/shoots", MetricsMiddleware(s.shootsHandler.HandlePostShoot, "shoots"))
	mux.HandleFunc("/shoots/", MetricsMiddleware(s.shootAwardsHandler.HandleGetShootAchievements, "shoot_achievements"))
	mux.HandleFunc("/achievements", MetricsMiddleware(s.achievementsHandler.HandleGetAchievements, "achievements"))
	mux.HandleFunc("/achievements/preview", MetricsMiddleware(s.achievementsHandler.HandlePreview, "achievements_preview"))
	mux.HandleFunc("/achievements/groups", MetricsMiddleware(s.groupsHandler.HandleGetGroups, "achievement_groups"))
	mux.HandleFunc("/diary", MetricsMiddleware(s.diaryHandler.HandleGetDiary, "diary"))
}

// shootRequest mirrors the wire schema for POST /shoots.
type shootRequest struct {
	ID       string         `json:"id"`
	Date     string         `json:"date"`
	GameType string         `json:"game_type"`
	Scores   []model.Symbol `json:"scores"`
	Score    *int           `json:"score"`
	BowType  string         `json:"bow_type"`
	Gender   string         `json:"gender"`
	AgeGroup string         `json:"age_group"`
	Note     string         `json:"note"`
}

func (r shootRequest) validate() error {
	if strings.TrimSpace(r.GameType) == "" {
		return errors.New("missing game_type")
	}
	if r.Date != "" {
		if _, err := time.Parse(dateLayout, r.Date); err != nil {
			return errors.New("invalid date; must be YYYY-MM-DD")
		}
	}
	if r.Score != nil && *r.Score < 0 {
		return errors.New("score must not be negative")
	}
	return nil
}

// toShoot converts the request to a domain shoot. A missing declared
// score falls back to the sum of the recorded arrows.
func (r shootRequest) toShoot() model.Shoot {
	s := model.Shoot{
		ID:       strings.TrimSpace(r.ID),
		GameType: strings.TrimSpace(r.GameType),
		Scores:   r.Scores,
		Note:     r.Note,
	}
	if r.Date != "" {
		d, _ := time.Parse(dateLayout, r.Date)
		s.Date = d
	}
	if r.Score != nil {
		s.Score = *r.Score
	} else {
		s.Score = scoring.SumScores(r.Scores, scoring.IsWorcesterRound(s.GameType))
	}
	if r.BowType != "" || r.Gender != "" || r.AgeGroup != "" {
		s.Profile = &model.Profile{BowType: r.BowType, Gender: r.Gender, AgeGroup: r.AgeGroup}
	}
	return s
}

type ackResponse struct {
	Status    string `json:"status"`
	ID        string `json:"id"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// achievementResponse is the wire shape of one computed achievement.
type achievementResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Tier               string  `json:"tier"`
	Group              string  `json:"group,omitempty"`
	IsUnlocked         bool    `json:"is_unlocked"`
	UnlockedAt         string  `json:"unlocked_at,omitempty"`
	AchievingShootID   string  `json:"achieving_shoot_id,omitempty"`
	AchievedDate       string  `json:"achieved_date,omitempty"`
	TotalArrows        int     `json:"total_arrows,omitempty"`
	TargetArrows       int     `json:"target_arrows,omitempty"`
	CurrentScore       int     `json:"current_score,omitempty"`
	TargetScore        int     `json:"target_score,omitempty"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

func toAchievementResponse(c achievements.Computed) achievementResponse {
	resp := achievementResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		Tier:               string(c.Tier),
		Group:              c.Group,
		IsUnlocked:         c.Unlocked,
		AchievingShootID:   c.AchievingShootID,
		TotalArrows:        c.TotalArrows,
		TargetArrows:       c.TargetArrows,
		CurrentScore:       c.CurrentScore,
		TargetScore:        c.TargetScore,
		ProgressPercentage: c.Percent,
	}
	if !c.UnlockedAt.IsZero() {
		resp.UnlockedAt = c.UnlockedAt.Format(time.RFC3339)
	}
	if !c.AchievedDate.IsZero() {
		resp.AchievedDate = c.AchievedDate.Format(dateLayout)
	}
	return resp
}

func toAchievementResponses(list []achievements.Computed) []achievementResponse {
	out := make([]achievementResponse, len(list))
	for i, c := range list {
		out[i] = toAchievementResponse(c)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// Wrap annotates err with the operation name.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// WrapKind annotates err with the operation name and a sentinel kind.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// NewKind builds an error from the operation name and a sentinel kind.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}
