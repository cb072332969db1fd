package achievements

import (
	"fmt"
	"strings"

	"github.com/fletching/quiver/internal/domain/model"
)

// evalScore runs the score-threshold family: filter to records of the
// required round (and bow type where specified) and compare declared
// totals against the target. The current shoot is checked first and wins
// ties; an unlock from history credits the first matching record in
// stored order, not the best-scoring one.
func evalScore(env evalEnv, mc model.Context, def Definition) (Progress, error) {
	spec := def.Score
	if spec == nil {
		return Progress{}, fmt.Errorf("%s: %w", def.ID, ErrMissingSpec)
	}

	prog := Progress{TargetScore: spec.Target}

	best := 0
	if cur := mc.CurrentOrNil(env.now); cur != nil && scoreMatches(spec, *cur) {
		best = cur.Score
		if cur.Score >= spec.Target {
			prog.unlockedBy(cur.ID, cur.Day())
		}
	}

	for _, s := range mc.History {
		if !scoreMatches(spec, s) {
			continue
		}
		if s.Score > best {
			best = s.Score
		}
		if !prog.Unlocked && s.Score >= spec.Target {
			prog.unlockedBy(s.ID, s.Day())
		}
	}

	prog.CurrentScore = best
	return prog, nil
}

func scoreMatches(spec *ScoreSpec, s model.Shoot) bool {
	if s.GameType == "" || !strings.EqualFold(s.GameType, spec.GameType) {
		return false
	}
	if spec.BowType != "" {
		if s.Profile == nil || !strings.EqualFold(s.Profile.BowType, spec.BowType) {
			return false
		}
	}
	return true
}
