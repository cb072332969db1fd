// Package achievements implements the achievement evaluation engine: a
// static definition registry, five pure evaluator families, and the
// calculator/aggregation layer that turns per-achievement results into a
// renderable, attributable set.
package achievements

import (
	"time"

	"github.com/fletching/quiver/internal/domain/rounds"
)

// Tier is the achievement difficulty band.
type Tier string

// Tiers.
const (
	TierBronze  Tier = "bronze"
	TierSilver  Tier = "silver"
	TierGold    Tier = "gold"
	TierDiamond Tier = "diamond"
)

// Family tags the algorithm that owns a definition. The calculator
// dispatches on this tag alone; no membership testing.
type Family string

// Evaluator families.
const (
	FamilyCumulative Family = "cumulative"
	FamilyScore      Family = "score"
	FamilyEndPattern Family = "end_pattern"
	FamilyWindow     Family = "window"
	FamilySubset     Family = "subset"
)

// CumulativeMetric selects what a cumulative achievement counts.
type CumulativeMetric int

// Cumulative metrics.
const (
	CountArrows CumulativeMetric = iota
	CountRounds
)

// CumulativeSpec parametrizes the cumulative-threshold family.
type CumulativeSpec struct {
	Metric CumulativeMetric
	Target int
	// GameTypes restricts CountRounds to the named round shapes,
	// matched case-insensitively. Ignored for CountArrows.
	GameTypes []string
}

// ScoreSpec parametrizes the score-threshold family.
type ScoreSpec struct {
	GameType string
	Target   int
	// BowType, when set, requires a matching profile attribute.
	BowType string
}

// EndPatternSpec parametrizes the end-pattern family. Exactly one of
// Allowed or MinTotal is used: a non-empty Allowed set means every arrow
// in the end must score one of the allowed values; otherwise the end's
// total is compared against MinTotal (strictly greater when Exclusive).
type EndPatternSpec struct {
	Distance int
	Unit     rounds.Unit
	Allowed  []int
	MinTotal int
	Exclusive bool
}

// WindowMetric selects what a sliding-window achievement sums per day.
type WindowMetric int

// Window metrics.
const (
	WindowArrows WindowMetric = iota
	WindowShoots
)

// WindowSpec parametrizes the sliding-time-window family. Days is the
// window size in calendar days; a span of Days-1 between first and last
// active day is inclusive. CalendarMonth buckets by (year, month) instead
// of a rolling span. SameRound groups by round type before searching.
type WindowSpec struct {
	Metric        WindowMetric
	Days          int
	Threshold     int
	SameRound     bool
	CalendarMonth bool
}

// SubsetMode selects the arrow-subset predicate.
type SubsetMode int

// Subset modes.
const (
	SubsetSum    SubsetMode = iota // sum of a capped arrow slice vs TargetScore
	SubsetSpider                   // count of X symbols vs TargetCount
)

// SubsetSpec parametrizes the arrow-subset family. MinDozens is the
// structural requirement: a round shooting fewer dozens at the distance
// makes the achievement unavailable, not merely unmet.
type SubsetSpec struct {
	Mode        SubsetMode
	Distance    int
	Unit        rounds.Unit
	MinDozens   float64
	MaxArrows   int // cap on the slice for SubsetSum; 0 means uncapped
	TargetScore int
	TargetCount int
}

// Definition is one achievement variant's static metadata. Definitions
// are generated once at process start and never mutated.
type Definition struct {
	ID          string
	Name        string
	Description string
	Tier        Tier
	Group       string
	Family      Family

	Cumulative *CumulativeSpec
	Score      *ScoreSpec
	EndPattern *EndPatternSpec
	Window     *WindowSpec
	Subset     *SubsetSpec
}

// Progress is the computed state of one achievement. It is derived fresh
// on every call and deterministic for unchanged input.
type Progress struct {
	Unlocked         bool
	UnlockedAt       time.Time // zero when locked
	AchievingShootID string
	AchievedDate     time.Time // calendar day of the achieving shoot

	// Ratio components; meaning depends on the family.
	TotalArrows  int
	TargetArrows int
	CurrentScore int
	TargetScore  int
}

// Computed pairs a definition with its evaluated progress.
type Computed struct {
	Definition
	Progress
	Percent float64
}

// unlockedBy marks progress as unlocked by the given shoot.
func (p *Progress) unlockedBy(id string, day time.Time) {
	p.Unlocked = true
	p.AchievingShootID = id
	p.AchievedDate = day
	p.UnlockedAt = day
}
