package achievements

import (
	"sort"
	"time"

	"github.com/fletching/quiver/internal/domain/model"
)

// TimelineKind discriminates diary feed entries.
type TimelineKind string

// Timeline entry kinds.
const (
	TimelineNote        TimelineKind = "note"
	TimelineAchievement TimelineKind = "achievement"
)

// TimelineItem is one entry in the merged diary feed.
type TimelineItem struct {
	Kind    TimelineKind
	Date    time.Time
	ShootID string

	// Note fields.
	GameType string
	Note     string

	// Achievement fields.
	AchievementID   string
	AchievementName string
	Tier            Tier
}

// Timeline merges unlocked achievements with free-text shoot notes into
// one chronological feed, newest first. Within a day, achievements sort
// before notes so an unlock shows above the shoot that earned it.
func Timeline(list []Computed, history []model.Shoot) []TimelineItem {
	var items []TimelineItem
	for _, c := range list {
		if !c.Unlocked {
			continue
		}
		items = append(items, TimelineItem{
			Kind:            TimelineAchievement,
			Date:            attributionDate(c),
			ShootID:         c.AchievingShootID,
			AchievementID:   c.ID,
			AchievementName: c.Name,
			Tier:            c.Tier,
		})
	}
	for _, s := range history {
		if s.Note == "" {
			continue
		}
		items = append(items, TimelineItem{
			Kind:     TimelineNote,
			Date:     s.Day(),
			ShootID:  s.ID,
			GameType: s.GameType,
			Note:     s.Note,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].Kind == TimelineAchievement && items[j].Kind == TimelineNote
	})
	return items
}
