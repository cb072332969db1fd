package achievements_test

import (
	"testing"

	"github.com/fletching/quiver/internal/domain/achievements"
	"github.com/fletching/quiver/internal/domain/rounds"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {
	Convey("Given the built-in achievement catalogue", t, func() {
		defs := achievements.Registry()

		Convey("Then it is a substantial, stable set", func() {
			So(len(defs), ShouldBeGreaterThan, 100)
			So(achievements.Registry(), ShouldHaveLength, len(defs))
		})

		Convey("Then every id is unique", func() {
			seen := make(map[string]bool, len(defs))
			for _, d := range defs {
				So(seen[d.ID], ShouldBeFalse)
				seen[d.ID] = true
			}
		})

		Convey("Then every definition carries the spec its family needs", func() {
			for _, d := range defs {
				So(d.ID, ShouldNotBeEmpty)
				So(d.Name, ShouldNotBeEmpty)
				So(d.Tier, ShouldBeIn, achievements.TierBronze, achievements.TierSilver, achievements.TierGold, achievements.TierDiamond)
				switch d.Family {
				case achievements.FamilyCumulative:
					So(d.Cumulative, ShouldNotBeNil)
					So(d.Cumulative.Target, ShouldBeGreaterThan, 0)
				case achievements.FamilyScore:
					So(d.Score, ShouldNotBeNil)
					So(d.Score.GameType, ShouldNotBeEmpty)
				case achievements.FamilyEndPattern:
					So(d.EndPattern, ShouldNotBeNil)
					So(len(d.EndPattern.Allowed) > 0 || d.EndPattern.MinTotal > 0, ShouldBeTrue)
				case achievements.FamilyWindow:
					So(d.Window, ShouldNotBeNil)
					So(d.Window.Threshold, ShouldBeGreaterThan, 0)
				case achievements.FamilySubset:
					So(d.Subset, ShouldNotBeNil)
				default:
					So(d.Family, ShouldBeIn,
						achievements.FamilyCumulative, achievements.FamilyScore,
						achievements.FamilyEndPattern, achievements.FamilyWindow,
						achievements.FamilySubset)
				}
			}
		})

		Convey("Then every score band names a round the catalogue resolves", func() {
			provider := rounds.NewStaticProvider()
			for _, d := range defs {
				if d.Family != achievements.FamilyScore {
					continue
				}
				_, err := provider.Config(d.Score.GameType)
				So(err, ShouldBeNil)
			}
		})

		Convey("Then the 252 scheme covers the imperial distance ladder", func() {
			count := 0
			for _, d := range defs {
				if d.Group == "252" {
					count++
					So(d.Subset.TargetScore, ShouldEqual, 252)
					So(d.Subset.MaxArrows, ShouldEqual, 36)
					So(d.Subset.Unit, ShouldEqual, rounds.Yards)
				}
			}
			So(count, ShouldEqual, 7)
		})
	})
}
