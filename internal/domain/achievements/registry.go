package achievements

import (
	"fmt"
	"strings"

	"github.com/fletching/quiver/internal/domain/rounds"
)

// Registry builds the full static achievement catalogue. It is
// deterministic and cheap; callers typically build it once at startup.
func Registry() []Definition {
	var defs []Definition
	defs = append(defs, arrowMilestones()...)
	defs = append(defs, roundCountAwards()...)
	defs = append(defs, scoreBands()...)
	defs = append(defs, endPatternAwards()...)
	defs = append(defs, windowAwards()...)
	defs = append(defs, subsetAwards()...)
	return defs
}

// arrowMilestones covers the lifetime arrow-count ladder.
func arrowMilestones() []Definition {
	steps := []struct {
		target int
		tier   Tier
	}{
		{1_000, TierBronze},
		{2_500, TierBronze},
		{5_000, TierSilver},
		{10_000, TierSilver},
		{25_000, TierGold},
		{50_000, TierGold},
		{100_000, TierDiamond},
	}
	defs := make([]Definition, 0, len(steps))
	for _, st := range steps {
		defs = append(defs, Definition{
			ID:          fmt.Sprintf("arrows_%d", st.target),
			Name:        fmt.Sprintf("%s Arrows", formatCount(st.target)),
			Description: fmt.Sprintf("Shoot %s arrows in total", formatCount(st.target)),
			Tier:        st.tier,
			Group:       "arrow-count",
			Family:      FamilyCumulative,
			Cumulative:  &CumulativeSpec{Metric: CountArrows, Target: st.target},
		})
	}
	return defs
}

// roundCountAwards covers "N completed rounds of shape X" ladders.
func roundCountAwards() []Definition {
	shapes := []string{
		"Windsor", "National", "Western", "Warwick",
		"Gert Lush", "Portsmouth", "WA 720 70m", "Frostbite",
	}
	steps := []struct {
		target int
		tier   Tier
	}{
		{1, TierBronze},
		{10, TierSilver},
		{25, TierGold},
		{50, TierDiamond},
	}
	defs := make([]Definition, 0, len(shapes)*len(steps))
	for _, shape := range shapes {
		slug := slugify(shape)
		for _, st := range steps {
			defs = append(defs, Definition{
				ID:          fmt.Sprintf("rounds_%s_%d", slug, st.target),
				Name:        fmt.Sprintf("%s x%d", shape, st.target),
				Description: fmt.Sprintf("Complete %d %s rounds", st.target, shape),
				Tier:        st.tier,
				Group:       "round-count",
				Family:      FamilyCumulative,
				Cumulative: &CumulativeSpec{
					Metric:    CountRounds,
					Target:    st.target,
					GameTypes: []string{shape},
				},
			})
		}
	}
	return defs
}

// scoreBands covers round-specific score thresholds.
func scoreBands() []Definition {
	var defs []Definition

	band := func(id, name, gameType, bowType string, target int, tier Tier, group string) {
		defs = append(defs, Definition{
			ID:          id,
			Name:        name,
			Description: fmt.Sprintf("Score %d or more on a %s", target, gameType),
			Tier:        tier,
			Group:       group,
			Family:      FamilyScore,
			Score:       &ScoreSpec{GameType: gameType, Target: target, BowType: bowType},
		})
	}

	// Portsmouth bands (max 600).
	for _, st := range []struct {
		target int
		tier   Tier
	}{
		{300, TierBronze}, {400, TierBronze}, {450, TierSilver}, {500, TierSilver},
		{550, TierGold}, {575, TierGold}, {600, TierDiamond},
	} {
		band(fmt.Sprintf("cushty_pompey_%d", st.target),
			fmt.Sprintf("Cushty Pompey %d", st.target),
			"Portsmouth", "", st.target, st.tier, "cushty-pompey")
	}

	// Frostbite bands (max 360).
	for _, st := range []struct {
		target int
		tier   Tier
	}{
		{200, TierBronze}, {250, TierBronze}, {275, TierSilver}, {300, TierSilver},
		{315, TierGold}, {330, TierGold}, {355, TierDiamond},
	} {
		band(fmt.Sprintf("frostbite_%d", st.target),
			fmt.Sprintf("Frostbite %d", st.target),
			"Frostbite", "", st.target, st.tier, "frostbite")
	}

	// WA 70m bands (max 720).
	for _, st := range []struct {
		target int
		tier   Tier
	}{
		{500, TierBronze}, {550, TierSilver}, {600, TierGold}, {650, TierDiamond},
	} {
		band(fmt.Sprintf("wa70_%d", st.target),
			fmt.Sprintf("%d at WA70m", st.target),
			"WA 70m", "", st.target, st.tier, "wa70")
	}

	// 720 Mastery, tiered per bow type.
	for _, bow := range []struct {
		name    string
		display string
		bands   []struct {
			target int
			tier   Tier
		}
	}{
		{"recurve", "Recurve", []struct {
			target int
			tier   Tier
		}{{550, TierBronze}, {600, TierSilver}, {650, TierGold}, {675, TierDiamond}}},
		{"compound", "Compound", []struct {
			target int
			tier   Tier
		}{{620, TierBronze}, {660, TierSilver}, {690, TierGold}, {700, TierDiamond}}},
	} {
		for _, st := range bow.bands {
			band(fmt.Sprintf("mastery_720_%s_%d", bow.name, st.target),
				fmt.Sprintf("720 Mastery %s %d", bow.display, st.target),
				"WA 720 70m", bow.name, st.target, st.tier, "720-mastery")
		}
	}

	return defs
}

// endPatternAwards covers single-end pattern achievements.
func endPatternAwards() []Definition {
	var defs []Definition

	pattern := func(id, name, desc string, tier Tier, group string, spec EndPatternSpec) {
		s := spec
		defs = append(defs, Definition{
			ID:          id,
			Name:        name,
			Description: desc,
			Tier:        tier,
			Group:       group,
			Family:      FamilyEndPattern,
			EndPattern:  &s,
		})
	}

	imperialDistances := []struct {
		yd   int
		tier Tier
	}{
		{20, TierBronze}, {30, TierBronze}, {40, TierSilver}, {50, TierSilver},
		{60, TierGold}, {80, TierGold}, {100, TierDiamond},
	}
	metricDistances := []struct {
		m    int
		tier Tier
	}{
		{30, TierBronze}, {50, TierSilver}, {60, TierGold}, {70, TierDiamond},
	}

	for _, d := range imperialDistances {
		pattern(fmt.Sprintf("red_alert_%dyd", d.yd),
			fmt.Sprintf("Red Alert %dyd", d.yd),
			fmt.Sprintf("Shoot an end of all 7s at %d yards", d.yd),
			d.tier, "red-alert",
			EndPatternSpec{Distance: d.yd, Unit: rounds.Yards, Allowed: []int{7}})
		pattern(fmt.Sprintf("dont_be_blue_%dyd", d.yd),
			fmt.Sprintf("Don't Be Blue %dyd", d.yd),
			fmt.Sprintf("Shoot an end of all 5s at %d yards", d.yd),
			d.tier, "dont-be-blue",
			EndPatternSpec{Distance: d.yd, Unit: rounds.Yards, Allowed: []int{5}})
		pattern(fmt.Sprintf("golden_end_%dyd", d.yd),
			fmt.Sprintf("Golden End %dyd", d.yd),
			fmt.Sprintf("Score 54 or more in one end at %d yards", d.yd),
			d.tier, "golden-end",
			EndPatternSpec{Distance: d.yd, Unit: rounds.Yards, MinTotal: 54})
	}

	for _, d := range metricDistances {
		pattern(fmt.Sprintf("red_alert_%dm", d.m),
			fmt.Sprintf("Red Alert %dm", d.m),
			fmt.Sprintf("Shoot an end of all 7s or 8s at %d metres", d.m),
			d.tier, "red-alert",
			EndPatternSpec{Distance: d.m, Unit: rounds.Metres, Allowed: []int{7, 8}})
		pattern(fmt.Sprintf("dont_be_blue_%dm", d.m),
			fmt.Sprintf("Don't Be Blue %dm", d.m),
			fmt.Sprintf("Shoot an end of all 5s or 6s at %d metres", d.m),
			d.tier, "dont-be-blue",
			EndPatternSpec{Distance: d.m, Unit: rounds.Metres, Allowed: []int{5, 6}})
		pattern(fmt.Sprintf("sight_mark_%dm", d.m),
			fmt.Sprintf("Sight Mark %dm", d.m),
			fmt.Sprintf("Score more than 40 in one end at %d metres", d.m),
			d.tier, "sight-mark",
			EndPatternSpec{Distance: d.m, Unit: rounds.Metres, MinTotal: 40, Exclusive: true})
	}

	return defs
}

// windowAwards covers the sliding-time-window achievements.
func windowAwards() []Definition {
	var defs []Definition

	for _, st := range []struct {
		target int
		tier   Tier
	}{
		{250, TierBronze}, {500, TierSilver}, {1000, TierGold}, {2000, TierDiamond},
	} {
		defs = append(defs, Definition{
			ID:          fmt.Sprintf("olympian_effort_%d", st.target),
			Name:        fmt.Sprintf("Olympian Effort %d", st.target),
			Description: fmt.Sprintf("Shoot %d arrows within any 3-day period", st.target),
			Tier:        st.tier,
			Group:       "olympian-effort",
			Family:      FamilyWindow,
			Window:      &WindowSpec{Metric: WindowArrows, Days: 3, Threshold: st.target},
		})
	}

	for _, st := range []struct {
		target int
		tier   Tier
	}{
		{3, TierBronze}, {5, TierSilver}, {10, TierGold},
	} {
		defs = append(defs, Definition{
			ID:          fmt.Sprintf("deliberate_practice_%d", st.target),
			Name:        fmt.Sprintf("Deliberate Practice %d", st.target),
			Description: fmt.Sprintf("Shoot the same round %d times within any 7-day period", st.target),
			Tier:        st.tier,
			Group:       "deliberate-practice",
			Family:      FamilyWindow,
			Window:      &WindowSpec{Metric: WindowShoots, Days: 7, Threshold: st.target, SameRound: true},
		})
	}

	for _, st := range []struct {
		target int
		tier   Tier
	}{
		{10, TierBronze}, {20, TierSilver}, {30, TierGold},
	} {
		defs = append(defs, Definition{
			ID:          fmt.Sprintf("other_hobbies_%d", st.target),
			Name:        fmt.Sprintf("Yes I Do Have Other Hobbies %d", st.target),
			Description: fmt.Sprintf("Record %d shoots within one calendar month", st.target),
			Tier:        st.tier,
			Group:       "other-hobbies",
			Family:      FamilyWindow,
			Window:      &WindowSpec{Metric: WindowShoots, Threshold: st.target, CalendarMonth: true},
		})
	}

	return defs
}

// subsetAwards covers the 252 scheme and the spider (X-count) awards.
func subsetAwards() []Definition {
	var defs []Definition

	for _, d := range []struct {
		yd   int
		tier Tier
	}{
		{20, TierBronze}, {30, TierBronze}, {40, TierSilver}, {50, TierSilver},
		{60, TierGold}, {80, TierGold}, {100, TierDiamond},
	} {
		defs = append(defs, Definition{
			ID:          fmt.Sprintf("award_252_%dyd", d.yd),
			Name:        fmt.Sprintf("252 at %dyd", d.yd),
			Description: fmt.Sprintf("Score 252 or more with your first 36 arrows at %d yards", d.yd),
			Tier:        d.tier,
			Group:       "252",
			Family:      FamilySubset,
			Subset: &SubsetSpec{
				Mode:        SubsetSum,
				Distance:    d.yd,
				Unit:        rounds.Yards,
				MinDozens:   3,
				MaxArrows:   36,
				TargetScore: 252,
			},
		})
	}

	spiderCounts := []struct {
		count int
		tier  Tier
	}{
		{1, TierBronze}, {3, TierSilver}, {6, TierGold},
	}
	for _, m := range []int{30, 50, 60, 70} {
		for _, c := range spiderCounts {
			defs = append(defs, Definition{
				ID:          fmt.Sprintf("spider_%dm_%d", m, c.count),
				Name:        fmt.Sprintf("Spider %dm x%d", m, c.count),
				Description: fmt.Sprintf("Shoot %d Xs at %d metres in one round", c.count, m),
				Tier:        c.tier,
				Group:       "spider",
				Family:      FamilySubset,
				Subset: &SubsetSpec{
					Mode:        SubsetSpider,
					Distance:    m,
					Unit:        rounds.Metres,
					MinDozens:   1,
					TargetCount: c.count,
				},
			})
		}
	}

	return defs
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

func formatCount(n int) string {
	if n >= 1000 && n%1000 == 0 {
		return fmt.Sprintf("%dk", n/1000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%d,%03d", n/1000, n%1000)
	}
	return fmt.Sprintf("%d", n)
}
