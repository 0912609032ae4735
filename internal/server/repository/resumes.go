package repository

import (
	"context"
	"maps"
	"sync"

	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// ResumesRepository: упорядоченные коллекции резюме по email владельца.
//
// Порядок: порядок вставки, обновление позицию не меняет.
type ResumesRepository struct {
	mu      sync.RWMutex
	resumes map[string][]models.Resume
}

// NewResumesRepository создаёт пустое хранилище резюме.
func NewResumesRepository() *ResumesRepository {
	return &ResumesRepository{
		resumes: make(map[string][]models.Resume),
	}
}

// Init создаёт пустую коллекцию для email. Повторный вызов ничего не меняет.
func (r *ResumesRepository) Init(ctx context.Context, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resumes[email]; !ok {
		r.resumes[email] = []models.Resume{}
	}
	return nil
}

// Upsert обновляет резюме с тем же id на его месте или добавляет в конец.
//
// Ошибки:
//   - ErrNotFound: коллекция для email не создана
func (r *ResumesRepository) Upsert(ctx context.Context, resume models.Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// data копируем, чтобы вызывающий не мог поменять состояние стора
	resume.Data = maps.Clone(resume.Data)

	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.resumes[resume.Email]
	if !ok {
		return serr.ErrNotFound
	}

	for i := range list {
		if list[i].ID == resume.ID {
			list[i] = resume
			return nil
		}
	}
	r.resumes[resume.Email] = append(list, resume)
	return nil
}

// List возвращает копию коллекции. Для неизвестного email: пустой срез, не ошибка.
func (r *ResumesRepository) List(ctx context.Context, email string) ([]models.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.resumes[email]
	out := make([]models.Resume, len(list))
	for i, res := range list {
		res.Data = maps.Clone(res.Data)
		out[i] = res
	}
	return out, nil
}
