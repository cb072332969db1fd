package achievements

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fletching/quiver/internal/domain/model"
)

// evalWindow runs the sliding-time-window family. History is bucketed by
// calendar day (optionally grouped by round type first), and every window
// of the required size over the active days is evaluated: days inside a
// window need not be consecutive, only the first/last day must sit within
// the span. A single day is always a valid window. The evaluator reports
// the larger of "best from history alone" and "best including the current
// shoot folded into today", and credits the earliest shoot whose addition
// crossed the threshold.
func evalWindow(env evalEnv, mc model.Context, def Definition) (Progress, error) {
	spec := def.Window
	if spec == nil {
		return Progress{}, fmt.Errorf("%s: %w", def.ID, ErrMissingSpec)
	}

	histOnly := collectWindowShoots(mc.History, spec, nil)
	resHist := searchAllGroups(histOnly, spec)

	res := resHist
	if cur := mc.CurrentOrNil(env.now); cur != nil {
		withCur := collectWindowShoots(mc.History, spec, cur)
		resCur := searchAllGroups(withCur, spec)
		if resCur.best > res.best {
			res.best = resCur.best
		}
		// History-only unlocks keep their earlier attribution; the
		// current shoot only earns credit when history alone falls short.
		if !resHist.unlocked && resCur.unlocked {
			res.unlocked = true
			res.crossingID = resCur.crossingID
			res.crossingDay = resCur.crossingDay
		}
	}

	prog := Progress{
		TotalArrows:  res.best,
		TargetArrows: spec.Threshold,
	}
	if res.unlocked {
		prog.unlockedBy(res.crossingID, res.crossingDay)
	}
	return prog, nil
}

// windowShoot is one shoot's contribution to the day buckets.
type windowShoot struct {
	id     string
	day    time.Time
	metric int
}

// windowResult is a group search outcome.
type windowResult struct {
	best        int
	unlocked    bool
	crossingID  string
	crossingDay time.Time
}

// collectWindowShoots flattens history (plus an optional current shoot)
// into per-group chronological shoot lists. Without SameRound there is a
// single group.
func collectWindowShoots(history []model.Shoot, spec *WindowSpec, cur *model.Shoot) map[string][]windowShoot {
	groups := make(map[string][]windowShoot)
	add := func(s model.Shoot) {
		key := ""
		if spec.SameRound {
			if s.GameType == "" {
				return
			}
			key = strings.ToLower(s.GameType)
		}
		metric := 1
		if spec.Metric == WindowArrows {
			metric = s.ArrowCount()
		}
		if metric == 0 {
			return
		}
		groups[key] = append(groups[key], windowShoot{id: s.ID, day: s.Day(), metric: metric})
	}
	for _, s := range history {
		add(s)
	}
	if cur != nil {
		add(*cur)
	}
	for key := range groups {
		g := groups[key]
		sort.SliceStable(g, func(i, j int) bool { return g[i].day.Before(g[j].day) })
		groups[key] = g
	}
	return groups
}

// searchAllGroups runs the window search per group and merges: maximum
// total across groups, earliest crossing across groups.
func searchAllGroups(groups map[string][]windowShoot, spec *WindowSpec) windowResult {
	var merged windowResult
	for _, g := range groups {
		var r windowResult
		if spec.CalendarMonth {
			r = searchCalendarMonth(g, spec.Threshold)
		} else {
			r = searchSpan(g, spec.Days, spec.Threshold)
		}
		if r.best > merged.best {
			merged.best = r.best
		}
		if r.unlocked && (!merged.unlocked || r.crossingDay.Before(merged.crossingDay)) {
			merged.unlocked = true
			merged.crossingID = r.crossingID
			merged.crossingDay = r.crossingDay
		}
	}
	return merged
}

// searchSpan evaluates every window whose first and last active day lie
// within a span of `days` calendar days. Shoots must be chronologically
// sorted. Day totals are non-negative, so the maximal window ending at a
// given day always starts at the earliest day still inside the span; a
// two-pointer sweep over the unique active days covers every candidate.
func searchSpan(shoots []windowShoot, days int, threshold int) windowResult {
	var res windowResult
	if len(shoots) == 0 {
		return res
	}
	if days < 1 {
		days = 1
	}

	type bucket struct {
		day    time.Time
		total  int
		shoots []windowShoot
	}
	var buckets []bucket
	for _, s := range shoots {
		if n := len(buckets); n > 0 && buckets[n-1].day.Equal(s.day) {
			buckets[n-1].total += s.metric
			buckets[n-1].shoots = append(buckets[n-1].shoots, s)
			continue
		}
		buckets = append(buckets, bucket{day: s.day, total: s.metric, shoots: []windowShoot{s}})
	}

	maxSpan := time.Duration(days-1) * 24 * time.Hour
	start := 0
	sum := 0
	for end := 0; end < len(buckets); end++ {
		sum += buckets[end].total
		for buckets[end].day.Sub(buckets[start].day) > maxSpan {
			sum -= buckets[start].total
			start++
		}
		if sum > res.best {
			res.best = sum
		}
		if !res.unlocked && sum >= threshold {
			// Re-walk the window chronologically to find the shoot
			// whose addition crossed the threshold.
			cum := 0
			for i := start; i <= end && !res.unlocked; i++ {
				for _, s := range buckets[i].shoots {
					cum += s.metric
					if cum >= threshold {
						res.unlocked = true
						res.crossingID = s.id
						res.crossingDay = s.day
						break
					}
				}
			}
		}
	}
	return res
}

// searchCalendarMonth buckets by (year, month) instead of a rolling span.
// The achieving shoot is the one that brings the earliest qualifying
// month up to the threshold.
func searchCalendarMonth(shoots []windowShoot, threshold int) windowResult {
	var res windowResult
	if len(shoots) == 0 {
		return res
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	totals := make(map[monthKey]int)
	order := make([]monthKey, 0)
	byMonth := make(map[monthKey][]windowShoot)
	for _, s := range shoots {
		k := monthKey{year: s.day.Year(), month: s.day.Month()}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += s.metric
		byMonth[k] = append(byMonth[k], s)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].year != order[j].year {
			return order[i].year < order[j].year
		}
		return order[i].month < order[j].month
	})

	for _, k := range order {
		if totals[k] > res.best {
			res.best = totals[k]
		}
		if !res.unlocked && totals[k] >= threshold {
			cum := 0
			for _, s := range byMonth[k] {
				cum += s.metric
				if cum >= threshold {
					res.unlocked = true
					res.crossingID = s.id
					res.crossingDay = s.day
					break
				}
			}
		}
	}
	return res
}
