package model_test

import (
	"testing"
	"time"

	"github.com/fletching/quiver/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDay(t *testing.T) {
	Convey("Given timestamps with time-of-day noise", t, func() {
		loc := time.FixedZone("UTC+4", 4*60*60)
		ts := time.Date(2026, 3, 14, 23, 45, 12, 0, loc)

		Convey("Then Day truncates to the UTC calendar day", func() {
			So(model.Day(ts), ShouldResemble, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
			So(model.Day(ts).Hour(), ShouldEqual, 0)
		})

		Convey("And two times on the same UTC day collapse to one value", func() {
			a := time.Date(2026, 3, 14, 0, 1, 0, 0, time.UTC)
			b := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
			So(model.Day(a).Equal(model.Day(b)), ShouldBeTrue)
		})
	})
}

func TestShootAccessors(t *testing.T) {
	Convey("Given a shoot", t, func() {
		s := model.Shoot{
			ID:     "s1",
			Date:   time.Date(2026, 5, 2, 14, 30, 0, 0, time.UTC),
			Scores: []model.Symbol{model.Num(9), model.Num(7), model.Miss()},
		}

		Convey("Then ArrowCount counts every recorded arrow, misses included", func() {
			So(s.ArrowCount(), ShouldEqual, 3)
		})

		Convey("Then Day drops the time of day", func() {
			So(s.Day(), ShouldResemble, time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC))
		})
	})
}

func TestContextCurrentOrNil(t *testing.T) {
	now := time.Date(2026, 8, 31, 16, 0, 0, 0, time.UTC)

	Convey("Given a context without a current shoot", t, func() {
		mc := model.Context{}

		Convey("Then CurrentOrNil is nil", func() {
			So(mc.CurrentOrNil(now), ShouldBeNil)
		})
	})

	Convey("Given a current shoot with no date", t, func() {
		mc := model.Context{Current: &model.Shoot{ID: "cur"}}
		cur := mc.CurrentOrNil(now)

		Convey("Then the date defaults to today", func() {
			So(cur, ShouldNotBeNil)
			So(cur.Date, ShouldResemble, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
		})

		Convey("And the original shoot is untouched", func() {
			So(mc.Current.Date.IsZero(), ShouldBeTrue)
		})
	})

	Convey("Given a current shoot with an explicit date", t, func() {
		d := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		mc := model.Context{Current: &model.Shoot{ID: "cur", Date: d}}

		Convey("Then the date is kept", func() {
			So(mc.CurrentOrNil(now).Date, ShouldResemble, d)
		})
	})
}
