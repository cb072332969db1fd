// Package rounds resolves round names to their shooting shape: distances,
// dozens per distance, end size, and the valid score alphabet.
package rounds

import (
	"fmt"
	"math"
	"strings"
)

// Unit is the distance unit a round is shot over.
type Unit string

// Distance units.
const (
	Yards  Unit = "yd"
	Metres Unit = "m"
)

// PracticeDozens is the sentinel marking a free-form practice round: the
// whole arrow sequence belongs to one implicit distance.
const PracticeDozens = 100

// DefaultEndSize is the usual number of arrows per end.
const DefaultEndSize = 6

// Config describes one named round.
type Config struct {
	Name     string
	Imperial bool
	Outdoor  bool
	EndSize  int
	// Dozens and Distances are parallel: Dozens[i] dozens are shot at
	// Distances[i], in order. Dozens may be fractional (e.g. 2.5).
	Dozens    []float64
	Distances []int
	Unit      Unit
	Alphabet  []string
}

// IsPractice reports whether the round is the free-form practice sentinel.
func (c Config) IsPractice() bool {
	return len(c.Dozens) == 1 && c.Dozens[0] == PracticeDozens
}

// ArrowsAt returns the arrow count shot at distance index i.
func (c Config) ArrowsAt(i int) int {
	return int(math.Round(c.Dozens[i] * 12))
}

// TotalArrows returns the full arrow complement of the round.
func (c Config) TotalArrows() int {
	total := 0
	for i := range c.Dozens {
		total += c.ArrowsAt(i)
	}
	return total
}

// DistanceIndex returns the position of the given distance in the round,
// or -1 when the round does not shoot it.
func (c Config) DistanceIndex(distance int, unit Unit) int {
	if c.Unit != unit {
		return -1
	}
	for i, d := range c.Distances {
		if d == distance {
			return i
		}
	}
	return -1
}

// DozensAt returns the dozens shot at the given distance, or 0 when the
// round does not shoot it.
func (c Config) DozensAt(distance int, unit Unit) float64 {
	i := c.DistanceIndex(distance, unit)
	if i < 0 {
		return 0
	}
	return c.Dozens[i]
}

// HasX reports whether the round's scoring alphabet contains the inner-ring
// X symbol at all.
func (c Config) HasX() bool {
	for _, s := range c.Alphabet {
		if s == "X" {
			return true
		}
	}
	return false
}

// Provider resolves a round name to its configuration.
type Provider interface {
	// Config performs a case-insensitive lookup. Returns ErrUnknownRound
	// when the name is not in the catalogue.
	Config(name string) (Config, error)
}

// StaticProvider serves a fixed catalogue of rounds.
type StaticProvider struct {
	byName map[string]Config
}

// Option applies a configuration option to the StaticProvider.
type Option func(*StaticProvider)

// WithRound adds or overrides a round in the catalogue.
func WithRound(cfg Config) Option {
	return func(p *StaticProvider) {
		if cfg.Name != "" {
			p.byName[strings.ToLower(cfg.Name)] = cfg
		}
	}
}

// NewStaticProvider builds a provider over the built-in catalogue.
func NewStaticProvider(opts ...Option) *StaticProvider {
	p := &StaticProvider{byName: make(map[string]Config, len(catalogue))}
	for _, cfg := range catalogue {
		p.byName[strings.ToLower(cfg.Name)] = cfg
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config implements Provider.
func (p *StaticProvider) Config(name string) (Config, error) {
	cfg, ok := p.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, fmt.Errorf("%q: %w", name, ErrUnknownRound)
	}
	return cfg, nil
}

// Names returns the catalogue's round names, for diagnostics.
func (p *StaticProvider) Names() []string {
	names := make([]string, 0, len(p.byName))
	for n := range p.byName {
		names = append(names, n)
	}
	return names
}
