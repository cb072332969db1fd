// Package model contains domain models passed between layers.
package model

import (
	"time"
)

// Profile carries the optional archer attributes attached to a shoot.
type Profile struct {
	BowType  string
	Gender   string
	AgeGroup string
}

// Shoot is one recorded (or in-progress) scoring session. Records are
// immutable once created; the engine treats them as read-only.
type Shoot struct {
	ID       string
	Date     time.Time // calendar day; time-of-day is ignored
	GameType string    // round name, matched case-insensitively
	Scores   []Symbol  // ordered, one per arrow
	Score    int       // declared total
	Profile  *Profile
	Note     string // free-text diary note, may be empty
}

// ArrowCount returns the number of arrows recorded on the shoot.
func (s Shoot) ArrowCount() int { return len(s.Scores) }

// Day returns the shoot date truncated to a UTC calendar day.
func (s Shoot) Day() time.Time {
	return Day(s.Date)
}

// Day truncates t to a UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Context is the sole input to every achievement evaluator. It is built
// fresh per evaluation call and never mutated.
type Context struct {
	// Current is the unsaved, in-progress shoot. May be nil.
	Current *Shoot

	// History holds saved shoots in stored order. Evaluators that need
	// chronological order must sort internally; storage order is not
	// guaranteed to be chronological.
	History []Shoot
}

// CurrentOrNil returns a copy of the current shoot with its date defaulted
// to today when absent.
func (c Context) CurrentOrNil(now time.Time) *Shoot {
	if c.Current == nil {
		return nil
	}
	cur := *c.Current
	if cur.Date.IsZero() {
		cur.Date = Day(now)
	}
	return &cur
}
