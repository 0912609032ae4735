// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"

	shared "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// User хранится в памяти процесса. Пароль в открытом виде,
// хэширование паролей в этом сервисе не делается.
type User struct {
	ID        uuid.UUID
	Email     string
	Password  string
	Name      string
	CreatedAt time.Time
}

// Public возвращает представление пользователя для API (без пароля).
func (u User) Public() shared.User {
	return shared.User{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
	}
}
