package achievements_test

import (
	"testing"

	"github.com/fletching/quiver/internal/domain/achievements"
	. "github.com/smartystreets/goconvey/convey"
)

func computed(tier achievements.Tier, unlocked bool) achievements.Computed {
	return achievements.Computed{
		Definition: achievements.Definition{ID: "x", Tier: tier},
		Progress:   achievements.Progress{Unlocked: unlocked},
	}
}

func TestAggregateGroups(t *testing.T) {
	Convey("Given a computed achievement list", t, func() {
		list := []achievements.Computed{
			computed(achievements.TierBronze, true),
			computed(achievements.TierBronze, false),
			computed(achievements.TierBronze, true),
			computed(achievements.TierGold, false),
		}

		Convey("When aggregating", func() {
			gp := achievements.AggregateGroups(list)

			Convey("Then tallies are per tier", func() {
				So(gp.Tiers[achievements.TierBronze], ShouldResemble, achievements.TierProgress{Earned: 2, Total: 3})
				So(gp.Tiers[achievements.TierGold], ShouldResemble, achievements.TierProgress{Earned: 0, Total: 1})
			})

			Convey("Then tiers absent from the list are omitted", func() {
				_, ok := gp.Tiers[achievements.TierDiamond]
				So(ok, ShouldBeFalse)
				So(gp.Tiers, ShouldHaveLength, 2)
			})

			Convey("Then the grand totals line up", func() {
				So(gp.TotalEarned, ShouldEqual, 2)
				So(gp.TotalAchievements, ShouldEqual, 4)
			})
		})

		Convey("When aggregating an empty list", func() {
			gp := achievements.AggregateGroups(nil)

			So(gp.Tiers, ShouldBeEmpty)
			So(gp.TotalEarned, ShouldEqual, 0)
			So(gp.TotalAchievements, ShouldEqual, 0)
		})
	})
}
