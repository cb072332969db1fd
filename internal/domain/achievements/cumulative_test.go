package achievements_test

import (
	"testing"

	"github.com/fletching/quiver/internal/domain/achievements"
	"github.com/fletching/quiver/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func arrowDef(target int) achievements.Definition {
	return achievements.Definition{
		ID:         "test_arrows",
		Tier:       achievements.TierBronze,
		Family:     achievements.FamilyCumulative,
		Cumulative: &achievements.CumulativeSpec{Metric: achievements.CountArrows, Target: target},
	}
}

func roundsDef(target int, gameTypes ...string) achievements.Definition {
	return achievements.Definition{
		ID:     "test_rounds",
		Tier:   achievements.TierBronze,
		Family: achievements.FamilyCumulative,
		Cumulative: &achievements.CumulativeSpec{
			Metric:    achievements.CountRounds,
			Target:    target,
			GameTypes: gameTypes,
		},
	}
}

func TestCumulativeArrowCount(t *testing.T) {
	Convey("Given a lifetime arrow target of 1000", t, func() {
		def := arrowDef(1000)

		older := model.Shoot{ID: "older", Date: day(1), GameType: "Practice", Scores: rep(990, 7)}
		newer := model.Shoot{ID: "newer", Date: day(2), GameType: "Practice", Scores: rep(16, 7)}

		Convey("When history crosses the target", func() {
			c := evaluateOne(def, model.Context{History: []model.Shoot{older, newer}})

			Convey("Then the crossing shoot earns the credit", func() {
				So(c.Unlocked, ShouldBeTrue)
				So(c.AchievingShootID, ShouldEqual, "newer")
				So(c.AchievedDate, ShouldResemble, day(2))
				So(c.TotalArrows, ShouldEqual, 1006)
				So(c.TargetArrows, ShouldEqual, 1000)
				So(c.Percent, ShouldEqual, 100)
			})
		})

		Convey("When the same history arrives in reversed storage order", func() {
			c := evaluateOne(def, model.Context{History: []model.Shoot{newer, older}})

			Convey("Then attribution is identical", func() {
				So(c.Unlocked, ShouldBeTrue)
				So(c.AchievingShootID, ShouldEqual, "newer")
			})
		})

		Convey("When the total falls one arrow short", func() {
			short := model.Shoot{ID: "short", Date: day(1), GameType: "Practice", Scores: rep(999, 7)}
			c := evaluateOne(def, model.Context{History: []model.Shoot{short}})

			Convey("Then the achievement stays locked with ratio progress", func() {
				So(c.Unlocked, ShouldBeFalse)
				So(c.TotalArrows, ShouldEqual, 999)
				So(c.Percent, ShouldAlmostEqual, 99.9, 0.001)
			})
		})

		Convey("When the current shoot supplies the crossing arrows", func() {
			cur := model.Shoot{ID: "cur", GameType: "Practice", Scores: rep(16, 7)}
			c := evaluateOne(def, model.Context{
				Current: &cur,
				History: []model.Shoot{older},
			})

			Convey("Then the current shoot earns the credit dated today", func() {
				So(c.Unlocked, ShouldBeTrue)
				So(c.AchievingShootID, ShouldEqual, "cur")
				So(c.AchievedDate, ShouldResemble, model.Day(testNow))
			})
		})

		Convey("When history already crossed before the current shoot", func() {
			cur := model.Shoot{ID: "cur", GameType: "Practice", Scores: rep(50, 7)}
			c := evaluateOne(def, model.Context{
				Current: &cur,
				History: []model.Shoot{older, newer},
			})

			Convey("Then the historical crossing keeps the attribution", func() {
				So(c.AchievingShootID, ShouldEqual, "newer")
				So(c.TotalArrows, ShouldEqual, 1056)
			})
		})

		Convey("When evaluated twice over unchanged input", func() {
			mc := model.Context{History: []model.Shoot{older, newer}}
			a := evaluateOne(def, mc)
			b := evaluateOne(def, mc)

			Convey("Then the result is identical", func() {
				So(a, ShouldResemble, b)
			})
		})
	})
}

func TestCumulativeRoundCount(t *testing.T) {
	Convey("Given a completed-rounds target", t, func() {
		def := roundsDef(2, "Windsor")

		complete := func(id string, d int) model.Shoot {
			return model.Shoot{ID: id, Date: day(d), GameType: "Windsor", Scores: rep(108, 7)}
		}

		Convey("When two complete Windsors are on record", func() {
			c := evaluateOne(def, model.Context{History: []model.Shoot{complete("w1", 1), complete("w2", 3)}})

			Convey("Then the second one unlocks it", func() {
				So(c.Unlocked, ShouldBeTrue)
				So(c.AchievingShootID, ShouldEqual, "w2")
				So(c.TotalArrows, ShouldEqual, 2)
			})
		})

		Convey("When one of them is a partial round", func() {
			partial := model.Shoot{ID: "p", Date: day(2), GameType: "Windsor", Scores: rep(100, 7)}
			c := evaluateOne(def, model.Context{History: []model.Shoot{complete("w1", 1), partial}})

			Convey("Then the partial does not count", func() {
				So(c.Unlocked, ShouldBeFalse)
				So(c.TotalArrows, ShouldEqual, 1)
			})
		})

		Convey("When the round name differs only in case", func() {
			lower := model.Shoot{ID: "lc", Date: day(1), GameType: "windsor", Scores: rep(108, 7)}
			c := evaluateOne(def, model.Context{History: []model.Shoot{lower, complete("w2", 2)}})

			Convey("Then it still matches", func() {
				So(c.Unlocked, ShouldBeTrue)
			})
		})

		Convey("When a history record names an unknown round", func() {
			unknown := model.Shoot{ID: "u", Date: day(1), GameType: "Mystery Round", Scores: rep(108, 7)}
			c := evaluateOne(roundsDef(1, "Mystery Round"), model.Context{History: []model.Shoot{unknown}})

			Convey("Then the record is excluded, not an error", func() {
				So(c.Unlocked, ShouldBeFalse)
				So(c.TotalArrows, ShouldEqual, 0)
			})
		})

		Convey("When practice sessions are targeted", func() {
			p := model.Shoot{ID: "p", Date: day(1), GameType: "Practice", Scores: rep(1200, 7)}
			c := evaluateOne(roundsDef(1, "Practice"), model.Context{History: []model.Shoot{p}})

			Convey("Then practice never counts as a completed round", func() {
				So(c.Unlocked, ShouldBeFalse)
			})
		})
	})
}
