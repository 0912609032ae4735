package api

import "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"

// Тела запросов в том виде, в каком они приходят по сети.
// Строки через указатели: required проверяет только наличие поля,
// пустая строка допустима.

type signupBody struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Name     *string `json:"name" validate:"required"`
}

func (b signupBody) model() models.SignupRequest {
	return models.SignupRequest{Email: *b.Email, Password: *b.Password, Name: *b.Name}
}

type loginBody struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

func (b loginBody) model() models.LoginRequest {
	return models.LoginRequest{Email: *b.Email, Password: *b.Password}
}

type resumeBody struct {
	ID       *string        `json:"id" validate:"required"`
	Email    *string        `json:"email" validate:"required"`
	Template *string        `json:"template" validate:"required"`
	Data     map[string]any `json:"data" validate:"required"`
}

func (b resumeBody) model() models.Resume {
	return models.Resume{ID: *b.ID, Email: *b.Email, Template: *b.Template, Data: b.Data}
}

type exportBody struct {
	Email    *string        `json:"email" validate:"required"`
	Template *string        `json:"template" validate:"required"`
	Data     map[string]any `json:"data"`
	Format   *string        `json:"format" validate:"required"`
}

func (b exportBody) model() models.ExportRequest {
	return models.ExportRequest{Email: *b.Email, Template: *b.Template, Data: b.Data, Format: *b.Format}
}
