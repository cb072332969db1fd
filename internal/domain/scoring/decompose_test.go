package scoring_test

import (
	"testing"

	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/rounds"
	"github.com/fletching/quiver/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// rep builds n copies of the same numeric symbol.
func rep(n, v int) []model.Symbol {
	out := make([]model.Symbol, n)
	for i := range out {
		out[i] = model.Num(v)
	}
	return out
}

func mustConfig(name string) rounds.Config {
	cfg, err := rounds.NewStaticProvider().Config(name)
	if err != nil {
		panic(err)
	}
	return cfg
}

func TestDecompose(t *testing.T) {
	windsor := mustConfig("Windsor")

	Convey("Given a complete Windsor of all 9s", t, func() {
		drs := scoring.Decompose(windsor, rep(108, 9), 0)

		Convey("Then each distance takes its three dozen in order", func() {
			So(drs, ShouldHaveLength, 3)
			So(drs[0].Distance, ShouldEqual, 60)
			So(drs[1].Distance, ShouldEqual, 50)
			So(drs[2].Distance, ShouldEqual, 40)
			for _, dr := range drs {
				So(dr.Unit, ShouldEqual, rounds.Yards)
				So(dr.Ends, ShouldHaveLength, 3)
				So(dr.Subtotal, ShouldEqual, 324)
			}
		})

		Convey("Then the running total never resets across distances", func() {
			So(drs[0].Ends[0].RunningTotal, ShouldEqual, 108)
			So(drs[0].Ends[2].RunningTotal, ShouldEqual, 324)
			So(drs[1].Ends[0].RunningTotal, ShouldEqual, 432)
			So(drs[2].Ends[2].RunningTotal, ShouldEqual, 972)
		})
	})

	Convey("Given a Windsor stopped mid-round", t, func() {
		drs := scoring.Decompose(windsor, rep(40, 9), 0)

		Convey("Then the first distance is full and the second partial", func() {
			So(drs, ShouldHaveLength, 3)
			So(drs[0].Ends, ShouldHaveLength, 3)
			So(drs[1].Ends, ShouldHaveLength, 1)
			So(drs[1].Ends[0].First, ShouldHaveLength, 4)
			So(drs[1].Ends[0].Second, ShouldBeEmpty)
		})

		Convey("And the untouched distance is present but empty", func() {
			So(drs[2].Distance, ShouldEqual, 40)
			So(drs[2].Ends, ShouldBeEmpty)
			So(drs[2].Subtotal, ShouldEqual, 0)
		})
	})

	Convey("Given an odd number of ends at one distance", t, func() {
		drs := scoring.Decompose(windsor, rep(18, 7), 0)

		Convey("Then the last pair has an empty second end", func() {
			So(drs[0].Ends, ShouldHaveLength, 2)
			So(drs[0].Ends[0].First, ShouldHaveLength, 6)
			So(drs[0].Ends[0].Second, ShouldHaveLength, 6)
			So(drs[0].Ends[1].First, ShouldHaveLength, 6)
			So(drs[0].Ends[1].Second, ShouldBeEmpty)
		})
	})

	Convey("Given an end size override", t, func() {
		drs := scoring.Decompose(windsor, rep(12, 9), 3)

		Convey("Then ends split at the override size", func() {
			So(drs[0].Ends, ShouldHaveLength, 2)
			So(drs[0].Ends[0].First, ShouldHaveLength, 3)
		})
	})

	Convey("Given a practice session", t, func() {
		practice := mustConfig("Practice")
		drs := scoring.Decompose(practice, rep(14, 8), 0)

		Convey("Then the whole sequence belongs to one distance", func() {
			So(drs, ShouldHaveLength, 1)
			So(drs[0].Subtotal, ShouldEqual, 112)
			So(drs[0].Ends, ShouldHaveLength, 2)
			So(drs[0].Ends[1].First, ShouldHaveLength, 2)
			So(drs[0].Ends[1].Second, ShouldBeEmpty)
		})
	})

	Convey("Given misses inside an end", t, func() {
		syms := append(rep(5, 9), model.Miss())
		drs := scoring.Decompose(windsor, syms, 0)

		Convey("Then totals drop the miss but the arrow stays in the end", func() {
			So(drs[0].Ends[0].First, ShouldHaveLength, 6)
			So(drs[0].Ends[0].RunningTotal, ShouldEqual, 45)
		})
	})
}

func TestDistanceArrowRange(t *testing.T) {
	windsor := mustConfig("Windsor")

	Convey("Given cumulative dozen offsets", t, func() {
		Convey("Then each distance maps to its index range", func() {
			start, end, ok := scoring.DistanceArrowRange(windsor, 60, rounds.Yards)
			So(ok, ShouldBeTrue)
			So(start, ShouldEqual, 0)
			So(end, ShouldEqual, 36)

			start, end, ok = scoring.DistanceArrowRange(windsor, 50, rounds.Yards)
			So(ok, ShouldBeTrue)
			So(start, ShouldEqual, 36)
			So(end, ShouldEqual, 72)
		})

		Convey("Then an unshot distance reports false", func() {
			_, _, ok := scoring.DistanceArrowRange(windsor, 70, rounds.Yards)
			So(ok, ShouldBeFalse)

			_, _, ok = scoring.DistanceArrowRange(windsor, 60, rounds.Metres)
			So(ok, ShouldBeFalse)
		})
	})
}
