// Package repository реализует хранилища сервера в памяти процесса.
//
// Данные живут пока живёт процесс, после рестарта всё теряется.
// Каждое хранилище само владеет своей map и защищает её мьютексом.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
)

// UsersRepository: пользователи по email.
type UsersRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
	now   func() time.Time
}

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{
		users: make(map[string]models.User),
		now:   time.Now,
	}
}

// Create сохраняет нового пользователя и проставляет ему id.
//
// Ошибки:
//   - ErrAlreadyExists: email уже занят
func (r *UsersRepository) Create(ctx context.Context, email, password, name string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[email]; ok {
		return models.User{}, serr.ErrAlreadyExists
	}

	u := models.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password,
		Name:      name,
		CreatedAt: r.now(),
	}
	r.users[email] = u

	return u, nil
}

// GetByEmail возвращает пользователя по email или ErrNotFound.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return models.User{}, serr.ErrNotFound
	}
	return u, nil
}

// Count: количество пользователей, отдаётся в /healthz.
func (r *UsersRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
