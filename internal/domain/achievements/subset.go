package achievements

import (
	"fmt"

	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/scoring"
)

// evalSubset runs the arrow-subset family: slice the raw arrow array by
// the index range belonging to a target distance (computed from dozen
// offsets, independent of end pairing) and apply the predicate. A round
// shooting fewer than the minimum dozens at the distance makes the
// achievement structurally unavailable for that shoot: it contributes
// nothing, never a partial sum. The current shoot is scanned first, then
// history in stored order.
func evalSubset(env evalEnv, mc model.Context, def Definition) (Progress, error) {
	spec := def.Subset
	if spec == nil {
		return Progress{}, fmt.Errorf("%s: %w", def.ID, ErrMissingSpec)
	}

	prog := Progress{}
	switch spec.Mode {
	case SubsetSpider:
		prog.TargetScore = spec.TargetCount
	default:
		prog.TargetScore = spec.TargetScore
	}

	best := 0
	consider := func(s model.Shoot) {
		val, ok := subsetValue(env, spec, s)
		if !ok {
			return
		}
		if val > best {
			best = val
		}
		target := spec.TargetScore
		if spec.Mode == SubsetSpider {
			target = spec.TargetCount
		}
		if !prog.Unlocked && val >= target {
			prog.unlockedBy(s.ID, s.Day())
		}
	}

	if cur := mc.CurrentOrNil(env.now); cur != nil {
		consider(*cur)
	}
	for _, s := range mc.History {
		consider(s)
	}

	prog.CurrentScore = best
	return prog, nil
}

// subsetValue computes the shoot's subset metric, or false when the shoot
// is structurally ineligible (wrong round, too few dozens at the
// distance, or no X in the alphabet for spider counting).
func subsetValue(env evalEnv, spec *SubsetSpec, s model.Shoot) (int, bool) {
	if s.GameType == "" {
		return 0, false
	}
	cfg, err := env.rounds.Config(s.GameType)
	if err != nil {
		return 0, false
	}
	if cfg.IsPractice() {
		return 0, false
	}
	if cfg.DozensAt(spec.Distance, spec.Unit) < spec.MinDozens {
		return 0, false
	}
	if spec.Mode == SubsetSpider && !cfg.HasX() {
		return 0, false
	}

	start, end, ok := scoring.DistanceArrowRange(cfg, spec.Distance, spec.Unit)
	if !ok {
		return 0, false
	}
	if spec.Mode == SubsetSum && spec.MaxArrows > 0 && end > start+spec.MaxArrows {
		end = start + spec.MaxArrows
	}
	if start >= len(s.Scores) {
		return 0, true
	}
	if end > len(s.Scores) {
		end = len(s.Scores)
	}
	slice := s.Scores[start:end]

	if spec.Mode == SubsetSpider {
		count := 0
		for _, sym := range slice {
			if sym.Kind == model.SymbolX {
				count++
			}
		}
		return count, true
	}
	return scoring.SumScores(slice, scoring.IsWorcesterRound(cfg.Name)), true
}
