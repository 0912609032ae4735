package service

import (
	shared "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// HealthService: минимально нужное для health-check.
type HealthService struct {
	users UsersRepo
}

func NewHealthService(users UsersRepo) *HealthService {
	return &HealthService{users: users}
}

// Check всегда ok, пока процесс жив. Заодно отдаём число пользователей.
func (s *HealthService) Check() shared.HealthResponse {
	return shared.HealthResponse{Status: "ok", Users: s.users.Count()}
}
