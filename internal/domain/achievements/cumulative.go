package achievements

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/rounds"
)

// evalCumulative runs the cumulative-threshold family: sort history
// chronologically, run a forward cumulative sum of the metric, and credit
// the first record whose post-addition total crosses the target. Storage
// order is never trusted.
func evalCumulative(env evalEnv, mc model.Context, def Definition) (Progress, error) {
	spec := def.Cumulative
	if spec == nil {
		return Progress{}, fmt.Errorf("%s: %w", def.ID, ErrMissingSpec)
	}

	prog := Progress{TargetArrows: spec.Target}

	ordered := make([]model.Shoot, len(mc.History))
	copy(ordered, mc.History)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Day().Before(ordered[j].Day())
	})

	total := 0
	for _, s := range ordered {
		n := cumulativeContribution(env, spec, s)
		if n == 0 {
			continue
		}
		total += n
		if !prog.Unlocked && total >= spec.Target {
			prog.unlockedBy(s.ID, s.Day())
		}
	}

	// The current shoot is folded in last: it can only cross the
	// threshold after every saved record, so an earlier historical
	// crossing always wins attribution.
	if cur := mc.CurrentOrNil(env.now); cur != nil {
		if n := cumulativeContribution(env, spec, *cur); n > 0 {
			total += n
			if !prog.Unlocked && total >= spec.Target {
				prog.unlockedBy(cur.ID, cur.Day())
			}
		}
	}

	prog.TotalArrows = total
	return prog, nil
}

// cumulativeContribution returns the shoot's contribution to the metric.
func cumulativeContribution(env evalEnv, spec *CumulativeSpec, s model.Shoot) int {
	switch spec.Metric {
	case CountRounds:
		if s.GameType == "" || !matchesAnyRound(spec.GameTypes, s.GameType) {
			return 0
		}
		cfg, err := env.rounds.Config(s.GameType)
		if err != nil {
			// A history record naming an unknown round is excluded
			// from matching, not an error.
			return 0
		}
		if !completedRound(cfg, s) {
			return 0
		}
		return 1
	default:
		return s.ArrowCount()
	}
}

// completedRound reports whether the shoot carries the round's full arrow
// complement. Partial shoots do not count as completed rounds.
func completedRound(cfg rounds.Config, s model.Shoot) bool {
	if cfg.IsPractice() {
		return false
	}
	return s.ArrowCount() == cfg.TotalArrows()
}

func matchesAnyRound(names []string, gameType string) bool {
	for _, n := range names {
		if strings.EqualFold(n, gameType) {
			return true
		}
	}
	return false
}

// evalEnv carries the evaluation collaborators shared by every family.
type evalEnv struct {
	rounds rounds.Provider
	now    time.Time
}
