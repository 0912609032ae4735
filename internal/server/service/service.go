// Package service содержит бизнес-логику конструктора резюме.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/models"
	shared "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Repositories: набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users   UsersRepo
	Resumes ResumesRepo
}

// Services: агрегатор всех сервисов приложения.
type Services struct {
	Users     *UsersService
	Resumes   *ResumesService
	Export    *ExportService
	Templates *TemplatesService
	Health    *HealthService
}

// NewServices собирает все сервисы приложения.
func NewServices(repos Repositories) *Services {
	return &Services{
		Users:     NewUsersService(repos.Users, repos.Resumes),
		Resumes:   NewResumesService(repos.Resumes),
		Export:    NewExportService(),
		Templates: NewTemplatesService(),
		Health:    NewHealthService(repos.Users),
	}
}

// UsersRepo: репозиторий пользователей (нужен для signup/login).
type UsersRepo interface {
	Create(ctx context.Context, email, password, name string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Count() int
}

// ResumesRepo: репозиторий резюме (коллекция на каждого пользователя).
type ResumesRepo interface {
	Init(ctx context.Context, email string) error
	Upsert(ctx context.Context, resume shared.Resume) error
	List(ctx context.Context, email string) ([]shared.Resume, error)
}
