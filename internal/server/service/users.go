package service

import (
	"context"
	"errors"

	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// UsersService реализует регистрацию и вход.
//
// Пароли сравниваются как есть, токены не выдаются:
// login только возвращает публичные поля пользователя.
type UsersService struct {
	users   UsersRepo
	resumes ResumesRepo
}

// NewUsersService создаёт UsersService.
func NewUsersService(users UsersRepo, resumes ResumesRepo) *UsersService {
	return &UsersService{users: users, resumes: resumes}
}

// Signup регистрирует нового пользователя и заводит ему пустую коллекцию резюме.
//
// Ошибки:
//   - ErrDuplicateEmail: email уже зарегистрирован
func (s *UsersService) Signup(ctx context.Context, email, password, name string) (shared.User, error) {
	u, err := s.users.Create(ctx, email, password, name)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			return shared.User{}, serr.ErrDuplicateEmail
		}
		return shared.User{}, err
	}

	if err := s.resumes.Init(ctx, u.Email); err != nil {
		return shared.User{}, err
	}

	return u.Public(), nil
}

// Login проверяет email и пароль.
//
// Поведение:
//   - не раскрывает факт существования email
//
// Ошибки:
//   - ErrInvalidCredentials
func (s *UsersService) Login(ctx context.Context, email, password string) (shared.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return shared.User{}, serr.ErrInvalidCredentials
		}
		return shared.User{}, err
	}

	if u.Password != password {
		return shared.User{}, serr.ErrInvalidCredentials
	}

	return u.Public(), nil
}
