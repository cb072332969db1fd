package achievements_test

import (
	"testing"

	"github.com/fletching/quiver/internal/domain/achievements"
	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/rounds"
	. "github.com/smartystreets/goconvey/convey"
)

func patternDef(spec achievements.EndPatternSpec) achievements.Definition {
	return achievements.Definition{
		ID:         "test_pattern",
		Tier:       achievements.TierGold,
		Family:     achievements.FamilyEndPattern,
		EndPattern: &spec,
	}
}

func TestEndPatternValueSet(t *testing.T) {
	allSevens60 := patternDef(achievements.EndPatternSpec{
		Distance: 60, Unit: rounds.Yards, Allowed: []int{7},
	})

	Convey("Given an all-7s-at-60yd target", t, func() {
		Convey("When a Windsor opens with an end of six 7s", func() {
			c := evaluateOne(allSevens60, model.Context{History: []model.Shoot{
				{ID: "w", Date: day(3), GameType: "Windsor", Scores: rep(6, 7)},
			}})

			Convey("Then one qualifying end is enough", func() {
				So(c.Unlocked, ShouldBeTrue)
				So(c.AchievingShootID, ShouldEqual, "w")
				So(c.Percent, ShouldEqual, 100)
			})
		})

		Convey("When a miss sits inside an otherwise perfect end", func() {
			scores := append(rep(5, 7), model.Miss())
			c := evaluateOne(allSevens60, model.Context{History: []model.Shoot{
				{ID: "w", Date: day(3), GameType: "Windsor", Scores: scores},
			}})

			Convey("Then the miss disqualifies the end", func() {
				So(c.Unlocked, ShouldBeFalse)
				So(c.Percent, ShouldEqual, 0)
			})
		})

		Convey("When the shoot stops mid-end", func() {
			c := evaluateOne(allSevens60, model.Context{History: []model.Shoot{
				{ID: "w", Date: day(3), GameType: "Windsor", Scores: rep(4, 7)},
			}})

			Convey("Then a partial end never satisfies a value-set predicate", func() {
				So(c.Unlocked, ShouldBeFalse)
			})
		})

		Convey("When the qualifying end sits at a later distance", func() {
			sevensAt50 := patternDef(achievements.EndPatternSpec{
				Distance: 50, Unit: rounds.Yards, Allowed: []int{7},
			})
			scores := append(rep(36, 9), rep(6, 7)...)
			c := evaluateOne(sevensAt50, model.Context{History: []model.Shoot{
				{ID: "w", Date: day(3), GameType: "Windsor", Scores: scores},
			}})

			Convey("Then decomposition attributes it to the right distance", func() {
				So(c.Unlocked, ShouldBeTrue)
			})
		})

		Convey("When the round never shoots the distance", func() {
			c := evaluateOne(allSevens60, model.Context{History: []model.Shoot{
				{ID: "p", Date: day(3), GameType: "Portsmouth", Scores: rep(60, 7)},
			}})

			So(c.Unlocked, ShouldBeFalse)
		})

		Convey("When a history record names an unknown round", func() {
			c := evaluateOne(allSevens60, model.Context{History: []model.Shoot{
				{ID: "u", Date: day(1), GameType: "Mystery", Scores: rep(6, 7)},
				{ID: "w", Date: day(2), GameType: "Windsor", Scores: rep(6, 7)},
			}})

			Convey("Then the record is skipped and the rest still evaluates", func() {
				So(c.Unlocked, ShouldBeTrue)
				So(c.AchievingShootID, ShouldEqual, "w")
			})
		})

		Convey("When both the current shoot and history qualify", func() {
			cur := model.Shoot{ID: "cur", GameType: "Windsor", Scores: rep(6, 7)}
			c := evaluateOne(allSevens60, model.Context{
				Current: &cur,
				History: []model.Shoot{{ID: "old", Date: day(1), GameType: "Windsor", Scores: rep(6, 7)}},
			})

			Convey("Then the current shoot is scanned first", func() {
				So(c.AchievingShootID, ShouldEqual, "cur")
			})
		})
	})
}

func TestEndPatternMinTotal(t *testing.T) {
	Convey("Given an inclusive end-total target of 54 at 60yd", t, func() {
		goldenEnd := patternDef(achievements.EndPatternSpec{
			Distance: 60, Unit: rounds.Yards, MinTotal: 54,
		})

		Convey("When an end totals exactly 54", func() {
			c := evaluateOne(goldenEnd, model.Context{History: []model.Shoot{
				{ID: "w", Date: day(1), GameType: "Windsor", Scores: rep(6, 9)},
			}})
			So(c.Unlocked, ShouldBeTrue)
		})

		Convey("When the best end totals 53", func() {
			scores := append(rep(5, 9), model.Num(8))
			c := evaluateOne(goldenEnd, model.Context{History: []model.Shoot{
				{ID: "w", Date: day(1), GameType: "Windsor", Scores: scores},
			}})
			So(c.Unlocked, ShouldBeFalse)
		})
	})

	Convey("Given an exclusive end-total target of 40 at 70m", t, func() {
		sightMark := patternDef(achievements.EndPatternSpec{
			Distance: 70, Unit: rounds.Metres, MinTotal: 40, Exclusive: true,
		})

		Convey("When an end totals exactly 40", func() {
			scores := append(rep(4, 7), rep(2, 6)...)
			c := evaluateOne(sightMark, model.Context{History: []model.Shoot{
				{ID: "wa", Date: day(1), GameType: "WA 70m", Scores: scores},
			}})

			Convey("Then exactly-at-threshold does not qualify", func() {
				So(c.Unlocked, ShouldBeFalse)
			})
		})

		Convey("When an end totals 41", func() {
			scores := append(rep(5, 7), model.Num(6))
			c := evaluateOne(sightMark, model.Context{History: []model.Shoot{
				{ID: "wa", Date: day(1), GameType: "WA 70m", Scores: scores},
			}})
			So(c.Unlocked, ShouldBeTrue)
		})
	})
}
