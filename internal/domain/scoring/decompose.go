package scoring

import (
	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/rounds"
)

// EndPair groups two consecutive ends for display. Second may be empty
// when the shoot stops mid-pair.
type EndPair struct {
	First        []model.Symbol
	Second       []model.Symbol
	RunningTotal int // cumulative across the whole shoot, never reset
}

// DistanceRound is one distance's slice of the shoot.
type DistanceRound struct {
	Distance int
	Unit     rounds.Unit
	Ends     []EndPair
	Subtotal int
}

// Decompose slices a flat arrow sequence into per-distance end pairs using
// the round configuration. Arrows are consumed in order: each distance
// takes round(dozens*12) arrows off the front of what remains. Partial
// ends are preserved as-is, never padded. endSize overrides the round's
// end size when positive.
func Decompose(cfg rounds.Config, syms []model.Symbol, endSize int) []DistanceRound {
	if endSize <= 0 {
		endSize = cfg.EndSize
	}
	if endSize <= 0 {
		endSize = rounds.DefaultEndSize
	}
	worcester := IsWorcesterRound(cfg.Name)

	if cfg.IsPractice() {
		dr := buildDistance(cfg.Distances[0], cfg.Unit, syms, endSize, worcester, 0)
		return []DistanceRound{dr}
	}

	out := make([]DistanceRound, 0, len(cfg.Dozens))
	running := 0
	rest := syms
	for i := range cfg.Dozens {
		n := cfg.ArrowsAt(i)
		if n > len(rest) {
			n = len(rest)
		}
		segment := rest[:n]
		rest = rest[n:]
		dr := buildDistance(cfg.Distances[i], cfg.Unit, segment, endSize, worcester, running)
		running += dr.Subtotal
		out = append(out, dr)
		if len(rest) == 0 && i < len(cfg.Dozens)-1 {
			// Incomplete shoot: remaining distances have no arrows yet.
			for j := i + 1; j < len(cfg.Dozens); j++ {
				out = append(out, DistanceRound{Distance: cfg.Distances[j], Unit: cfg.Unit})
			}
			break
		}
	}
	return out
}

// buildDistance splits one distance's arrows into ends of endSize, pairs
// consecutive ends, and tracks the running total carried in from earlier
// distances.
func buildDistance(distance int, unit rounds.Unit, syms []model.Symbol, endSize int, worcester bool, carried int) DistanceRound {
	dr := DistanceRound{Distance: distance, Unit: unit}
	ends := make([][]model.Symbol, 0, (len(syms)+endSize-1)/endSize)
	for start := 0; start < len(syms); start += endSize {
		stop := start + endSize
		if stop > len(syms) {
			stop = len(syms)
		}
		ends = append(ends, syms[start:stop])
	}

	running := carried
	for i := 0; i < len(ends); i += 2 {
		pair := EndPair{First: ends[i]}
		running += SumScores(ends[i], worcester)
		if i+1 < len(ends) {
			pair.Second = ends[i+1]
			running += SumScores(ends[i+1], worcester)
		}
		pair.RunningTotal = running
		dr.Ends = append(dr.Ends, pair)
	}
	dr.Subtotal = running - carried
	return dr
}

// DistanceArrowRange returns the [start, end) arrow index range belonging
// to the given distance, computed from cumulative dozen offsets and
// independent of end pairing. The second return is false when the round
// does not shoot the distance.
func DistanceArrowRange(cfg rounds.Config, distance int, unit rounds.Unit) (int, int, bool) {
	idx := cfg.DistanceIndex(distance, unit)
	if idx < 0 {
		return 0, 0, false
	}
	start := 0
	for i := 0; i < idx; i++ {
		start += cfg.ArrowsAt(i)
	}
	return start, start + cfg.ArrowsAt(idx), true
}
