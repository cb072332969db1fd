package achievements_test

import (
	"time"

	"github.com/fletching/quiver/internal/domain/achievements"
	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/rounds"
)

// testNow pins "today" for every evaluation in this package's tests.
var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

// day returns the d-th of January 2026 as a UTC calendar day.
func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

// rep builds n copies of the same numeric symbol.
func rep(n, v int) []model.Symbol {
	out := make([]model.Symbol, n)
	for i := range out {
		out[i] = model.Num(v)
	}
	return out
}

// newCalculator builds a calculator over the built-in catalogue with a
// pinned clock and the given registry.
func newCalculator(defs ...achievements.Definition) *achievements.Calculator {
	return newCalculatorWith(rounds.NewStaticProvider(), defs...)
}

func newCalculatorWith(provider rounds.Provider, defs ...achievements.Definition) *achievements.Calculator {
	return achievements.NewCalculator(provider,
		achievements.WithRegistry(defs),
		achievements.WithClock(func() time.Time { return testNow }),
	)
}

// evaluateOne runs a single definition against the context.
func evaluateOne(def achievements.Definition, mc model.Context) achievements.Computed {
	return newCalculator(def).Evaluate(mc)[0]
}
