// Package repository defines the shoot history store interface and errors.
package repository

import (
	"context"

	"github.com/fletching/quiver/internal/domain/model"
)

// Store provides read/write access to the shoot history. Implementations
// must preserve insertion order: score-threshold evaluators depend on
// stored array order, which is not necessarily chronological.
type Store interface {
	// Add appends a shoot to the history. Returns ErrDuplicateID when
	// the id is already present.
	Add(ctx context.Context, s model.Shoot) error

	// Get returns the shoot with the given id.
	// Returns ErrNotFound when the id is unknown.
	Get(ctx context.Context, id string) (model.Shoot, error)

	// List returns the full history in stored (insertion) order. The
	// returned slice is a copy; callers may not mutate stored records.
	List(ctx context.Context) ([]model.Shoot, error)

	// Count returns the number of stored shoots.
	Count(ctx context.Context) int
}
