// Package memory: локальная копия резюме пользователя на стороне CLI.
package memory

import (
	"maps"
	"sync"

	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// ResumesStore: потокобезопасное in-memory хранилище резюме.
//
// Порядок резюме совпадает с серверным: новые id добавляются в конец,
// существующие заменяются на своём месте.
type ResumesStore struct {
	mu    sync.RWMutex
	order []string
	items map[string]models.Resume
}

// NewResumes создаёт пустое хранилище.
func NewResumes() *ResumesStore {
	return &ResumesStore{
		items: make(map[string]models.Resume),
	}
}

// Get возвращает резюме по id.
//
// Если резюме нет: serr.ErrResumeNotFound.
func (s *ResumesStore) Get(id string) (models.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.items[id]
	if !ok {
		return models.Resume{}, serr.ErrResumeNotFound
	}
	r.Data = maps.Clone(r.Data)
	return r, nil
}

// Upsert добавляет или заменяет резюме по id.
func (s *ResumesStore) Upsert(r models.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsertLocked(r)
}

func (s *ResumesStore) upsertLocked(r models.Resume) {
	if _, ok := s.items[r.ID]; !ok {
		s.order = append(s.order, r.ID)
	}
	r.Data = maps.Clone(r.Data)
	s.items[r.ID] = r
}

// ReplaceAll полностью заменяет содержимое стора (после pull).
// Дубликаты по id схлопываются, побеждает последний.
func (s *ResumesStore) ReplaceAll(list []models.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = make([]string, 0, len(list))
	s.items = make(map[string]models.Resume, len(list))
	for _, r := range list {
		s.upsertLocked(r)
	}
}

// List возвращает резюме в порядке добавления.
func (s *ResumesStore) List() []models.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resume, 0, len(s.order))
	for _, id := range s.order {
		r := s.items[id]
		r.Data = maps.Clone(r.Data)
		out = append(out, r)
	}
	return out
}

// Len: количество резюме в сторе.
func (s *ResumesStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
