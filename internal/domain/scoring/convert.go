// Package scoring holds the arrow score primitives: symbol-to-value
// conversion and decomposition of a flat arrow sequence into distances
// and ends.
package scoring

import (
	"strings"

	"github.com/fletching/quiver/internal/domain/model"
)

// Ring values for the inner-ring X symbol. Worcester-family faces score
// the centre spot as 5; everywhere else X counts 10.
const (
	xValue          = 10
	worcesterXValue = 5
)

// IsWorcesterRound reports whether the round name belongs to the
// Worcester family, matched case-insensitively on the name.
func IsWorcesterRound(name string) bool {
	return strings.Contains(strings.ToLower(name), "worcester")
}

// Value converts a single symbol to its numeric score. Misses are 0.
func Value(s model.Symbol, worcester bool) int {
	switch s.Kind {
	case model.SymbolX:
		if worcester {
			return worcesterXValue
		}
		return xValue
	case model.SymbolMiss:
		return 0
	default:
		return s.Value
	}
}

// SumScores totals a symbol sequence for cumulative scoring, dropping
// misses before summing.
func SumScores(syms []model.Symbol, worcester bool) int {
	total := 0
	for _, s := range syms {
		if s.Kind == model.SymbolMiss {
			continue
		}
		total += Value(s, worcester)
	}
	return total
}

// EndValues converts an end's symbols keeping misses as explicit zeros.
// End-pattern predicates rely on this: a miss inside an otherwise
// qualifying end must disqualify it, even though the same arrow is
// dropped from cumulative totals.
func EndValues(syms []model.Symbol, worcester bool) []int {
	out := make([]int, len(syms))
	for i, s := range syms {
		out[i] = Value(s, worcester)
	}
	return out
}

// SumEnd totals an end with misses kept as zeros. Numerically identical
// to SumScores but paired with EndValues for end predicates.
func SumEnd(syms []model.Symbol, worcester bool) int {
	total := 0
	for _, v := range EndValues(syms, worcester) {
		total += v
	}
	return total
}
