package engine

import (
	"slices"

	"github.com/lixenwraith/marble-sandbox/core"
)

// Store maps entities to one component type and remembers insertion order
// Only the tick goroutine touches a store
type Store[T any] struct {
	byEntity map[core.Entity]T
	order    []core.Entity
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{byEntity: make(map[core.Entity]T)}
}

// Put inserts or replaces; replacing keeps the original position
func (s *Store[T]) Put(e core.Entity, val T) {
	if _, ok := s.byEntity[e]; !ok {
		s.order = append(s.order, e)
	}
	s.byEntity[e] = val
}

func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.byEntity[e]
	return val, ok
}

func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.byEntity[e]
	return ok
}

// Remove drops e; the remaining order is unchanged
func (s *Store[T]) Remove(e core.Entity) {
	if _, ok := s.byEntity[e]; !ok {
		return
	}
	delete(s.byEntity, e)
	if i := slices.Index(s.order, e); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// Entities returns a snapshot of the order, safe to iterate while removing
func (s *Store[T]) Entities() []core.Entity {
	return slices.Clone(s.order)
}

// Each visits in insertion order; fn must not add or remove entries
func (s *Store[T]) Each(fn func(e core.Entity, val T)) {
	for _, e := range s.order {
		fn(e, s.byEntity[e])
	}
}

func (s *Store[T]) Len() int {
	return len(s.order)
}

func (s *Store[T]) Clear() {
	clear(s.byEntity)
	s.order = s.order[:0]
}
