// Package repository defines the shoot history store interface and errors.
package repository

import "github.com/fletching/quiver/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithInitialShoots seeds the store with an existing history, preserving
// the given order.
func WithInitialShoots(shoots []model.Shoot) Option {
	return func(s *MemStore) {
		for _, sh := range shoots {
			if _, ok := s.byID[sh.ID]; ok {
				continue
			}
			s.byID[sh.ID] = len(s.shoots)
			s.shoots = append(s.shoots, sh)
		}
	}
}
