package achievements

import (
	"sort"
	"time"
)

// ForShoot filters a computed set to the achievements the given shoot
// earned, newest first.
func ForShoot(list []Computed, shootID string) []Computed {
	if shootID == "" {
		return nil
	}
	var out []Computed
	for _, c := range list {
		if c.Unlocked && c.AchievingShootID == shootID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return attributionDate(out[i]).After(attributionDate(out[j]))
	})
	return out
}

func attributionDate(c Computed) time.Time {
	if !c.AchievedDate.IsZero() {
		return c.AchievedDate
	}
	return c.UnlockedAt
}
