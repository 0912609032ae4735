package service

import (
	"context"
	"errors"

	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// ResumesService: сохранение и получение резюме пользователя.
type ResumesService struct {
	repo ResumesRepo
}

// NewResumesService создаёт новый ResumesService.
func NewResumesService(repo ResumesRepo) *ResumesService {
	return &ResumesService{repo: repo}
}

// Save делает upsert резюме по id внутри коллекции владельца.
//
// Ошибки:
//   - ErrUnknownOwner: email не проходил signup
func (s *ResumesService) Save(ctx context.Context, resume shared.Resume) error {
	err := s.repo.Upsert(ctx, resume)
	if errors.Is(err, serr.ErrNotFound) {
		return serr.ErrUnknownOwner
	}
	return err
}

// List возвращает резюме в порядке добавления.
// Для неизвестного email отдаём пустой список, это не ошибка.
func (s *ResumesService) List(ctx context.Context, email string) ([]shared.Resume, error) {
	list, err := s.repo.List(ctx, email)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []shared.Resume{}
	}
	return list, nil
}
