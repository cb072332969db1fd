package achievements

import (
	"time"

	"github.com/fletching/quiver/internal/domain/model"
	"github.com/fletching/quiver/internal/domain/rounds"
)

const percentMax = 100.0

// Evaluator is a pure function from evaluation context and definition to
// progress. Evaluators never mutate their inputs and hold no state.
type Evaluator func(env evalEnv, mc model.Context, def Definition) (Progress, error)

// Calculator dispatches each registry entry to the evaluator owning its
// family and normalizes progress into a percentage.
type Calculator struct {
	rounds     rounds.Provider
	registry   []Definition
	evaluators map[Family]Evaluator
	now        func() time.Time
	onError    func(def Definition, err error)
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithRegistry overrides the built-in definition registry.
func WithRegistry(defs []Definition) Option {
	return func(c *Calculator) {
		if len(defs) > 0 {
			c.registry = defs
		}
	}
}

// WithClock overrides the time source used to default the current shoot's
// date. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// WithErrorHook installs a callback invoked when an evaluator fails for
// one achievement. The failing entry still yields a zero-progress result.
func WithErrorHook(hook func(def Definition, err error)) Option {
	return func(c *Calculator) {
		if hook != nil {
			c.onError = hook
		}
	}
}

// NewCalculator builds a calculator over the given round provider.
func NewCalculator(provider rounds.Provider, opts ...Option) *Calculator {
	c := &Calculator{
		rounds:   provider,
		registry: Registry(),
		now:      time.Now,
		evaluators: map[Family]Evaluator{
			FamilyCumulative: evalCumulative,
			FamilyScore:      evalScore,
			FamilyEndPattern: evalEndPattern,
			FamilyWindow:     evalWindow,
			FamilySubset:     evalSubset,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the calculator's definitions in registry order.
func (c *Calculator) Registry() []Definition {
	out := make([]Definition, len(c.registry))
	copy(out, c.registry)
	return out
}

// Evaluate computes every achievement against the context. One failing
// evaluator never aborts the rest: the failing entry comes back locked
// with zero progress.
func (c *Calculator) Evaluate(mc model.Context) []Computed {
	env := evalEnv{rounds: c.rounds, now: c.now()}
	out := make([]Computed, 0, len(c.registry))
	for _, def := range c.registry {
		prog, err := c.evaluateOne(env, mc, def)
		if err != nil {
			if c.onError != nil {
				c.onError(def, err)
			}
			prog = Progress{}
		}
		out = append(out, Computed{
			Definition: def,
			Progress:   prog,
			Percent:    percent(def, prog),
		})
	}
	return out
}

func (c *Calculator) evaluateOne(env evalEnv, mc model.Context, def Definition) (Progress, error) {
	eval, ok := c.evaluators[def.Family]
	if !ok {
		return Progress{}, ErrUnknownFamily
	}
	return eval(env, mc, def)
}

// percent normalizes progress. Ratio families report
// clamp(current/target*100); binary families report 0 or 100.
func percent(def Definition, prog Progress) float64 {
	switch def.Family {
	case FamilyEndPattern:
		if prog.Unlocked {
			return percentMax
		}
		return 0
	case FamilyScore, FamilySubset:
		return ratioPercent(prog.CurrentScore, prog.TargetScore, prog.Unlocked)
	default:
		return ratioPercent(prog.TotalArrows, prog.TargetArrows, prog.Unlocked)
	}
}

func ratioPercent(current, target int, unlocked bool) float64 {
	if unlocked {
		return percentMax
	}
	if target <= 0 {
		return 0
	}
	p := float64(current) / float64(target) * percentMax
	if p > percentMax {
		p = percentMax
	}
	if p < 0 {
		p = 0
	}
	return p
}
