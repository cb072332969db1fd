package achievements

import (
	"fmt"

	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/scoring"
)

// evalEndPattern runs the end-pattern family: for shoots of rounds that
// shoot the target distance, decompose into ends and test each individual
// end against the predicate. Misses stay visible to the predicate as
// explicit zeros, so a miss disqualifies an "all equal" end even though
// scoring totals drop it. The current shoot is scanned first, then
// history in stored order; the first qualifying end wins.
func evalEndPattern(env evalEnv, mc model.Context, def Definition) (Progress, error) {
	spec := def.EndPattern
	if spec == nil {
		return Progress{}, fmt.Errorf("%s: %w", def.ID, ErrMissingSpec)
	}

	prog := Progress{TargetScore: spec.MinTotal}

	if cur := mc.CurrentOrNil(env.now); cur != nil {
		ok, err := shootHasPatternEnd(env, spec, *cur)
		if err != nil {
			return Progress{}, err
		}
		if ok {
			prog.unlockedBy(cur.ID, cur.Day())
			return prog, nil
		}
	}

	for _, s := range mc.History {
		ok, err := shootHasPatternEnd(env, spec, s)
		if err != nil {
			// History records naming unknown rounds are excluded, not fatal.
			continue
		}
		if ok {
			prog.unlockedBy(s.ID, s.Day())
			return prog, nil
		}
	}

	return prog, nil
}

// shootHasPatternEnd reports whether any single end of the shoot at the
// target distance satisfies the predicate.
func shootHasPatternEnd(env evalEnv, spec *EndPatternSpec, s model.Shoot) (bool, error) {
	if s.GameType == "" {
		return false, nil
	}
	cfg, err := env.rounds.Config(s.GameType)
	if err != nil {
		return false, err
	}
	if cfg.DistanceIndex(spec.Distance, spec.Unit) < 0 {
		return false, nil
	}

	worcester := scoring.IsWorcesterRound(cfg.Name)
	for _, dr := range scoring.Decompose(cfg, s.Scores, 0) {
		if dr.Distance != spec.Distance || dr.Unit != spec.Unit {
			continue
		}
		for _, pair := range dr.Ends {
			if endMatches(spec, pair.First, cfg.EndSize, worcester) {
				return true, nil
			}
			if len(pair.Second) > 0 && endMatches(spec, pair.Second, cfg.EndSize, worcester) {
				return true, nil
			}
		}
	}
	return false, nil
}

func endMatches(spec *EndPatternSpec, end []model.Symbol, endSize int, worcester bool) bool {
	if len(spec.Allowed) > 0 {
		// Value-set predicate: requires a full end, every arrow in the set.
		if len(end) != endSize {
			return false
		}
		for _, v := range scoring.EndValues(end, worcester) {
			if !containsInt(spec.Allowed, v) {
				return false
			}
		}
		return true
	}

	total := scoring.SumEnd(end, worcester)
	if spec.Exclusive {
		return total > spec.MinTotal
	}
	return total >= spec.MinTotal
}

func containsInt(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
