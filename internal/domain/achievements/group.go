package achievements

// TierProgress is the earned/total tally for one tier.
type TierProgress struct {
	Earned int
	Total  int
}

// GroupProgress rolls up a computed achievement list per tier. Tiers with
// no achievements in the list are omitted.
type GroupProgress struct {
	Tiers             map[Tier]TierProgress
	TotalEarned       int
	TotalAchievements int
}

// AggregateGroups tallies earned/total counts across exactly the tiers
// present in the list.
func AggregateGroups(list []Computed) GroupProgress {
	gp := GroupProgress{Tiers: make(map[Tier]TierProgress)}
	for _, c := range list {
		tp := gp.Tiers[c.Tier]
		tp.Total++
		if c.Unlocked {
			tp.Earned++
			gp.TotalEarned++
		}
		gp.Tiers[c.Tier] = tp
		gp.TotalAchievements++
	}
	return gp
}
