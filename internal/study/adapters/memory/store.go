// Package memory содержит хранилища учебных сущностей в памяти процесса.
// Используются в тестах и при STUDYMATE_STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"studymate/internal/study/domain/entities"
)

type cloneable[E any] interface {
	entities.Owned
	Clone() E
}

// Store - потокобезопасное хранилище с сохранением порядка вставки.
type Store[E cloneable[E]] struct {
	mu       sync.RWMutex
	items    map[string]E
	order    []string
	notFound error
}

// NewStore создает хранилище; notFound возвращается для отсутствующих и чужих записей.
func NewStore[E cloneable[E]](notFound error) *Store[E] {
	return &Store[E]{items: make(map[string]E), notFound: notFound}
}

func (s *Store[E]) Create(_ context.Context, entity E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[entity.GetID()] = entity.Clone()
	s.order = append(s.order, entity.GetID())
	return entity.Clone(), nil
}

func (s *Store[E]) FindByID(_ context.Context, id string) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		var zero E
		return zero, s.notFound
	}
	return item.Clone(), nil
}

func (s *Store[E]) ListByOwner(_ context.Context, ownerID string) ([]E, error) {
	return s.Filter(ownerID, func(E) bool { return true }), nil
}

func (s *Store[E]) Update(_ context.Context, entity E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[entity.GetID()]
	if !ok || current.GetOwnerID() != entity.GetOwnerID() {
		var zero E
		return zero, s.notFound
	}
	s.items[entity.GetID()] = entity.Clone()
	return entity.Clone(), nil
}

func (s *Store[E]) Delete(_ context.Context, id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok || current.GetOwnerID() != ownerID {
		return s.notFound
	}
	delete(s.items, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Filter возвращает копии записей владельца, удовлетворяющих keep, в порядке вставки.
func (s *Store[E]) Filter(ownerID string, keep func(E) bool) []E {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]E, 0)
	for _, id := range s.order {
		item := s.items[id]
		if item.GetOwnerID() == ownerID && keep(item) {
			result = append(result, item.Clone())
		}
	}
	return result
}

// Mutate применяет fn ко всем записям под блокировкой записи.
func (s *Store[E]) Mutate(fn func(E)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		fn(item)
	}
}
