// Package models содержит модели HTTP API, общие для сервера и агента.
package models

// User: публичная часть пользователя, пароль наружу не отдаём.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SignupRequest: тело запроса POST /signup/.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest: тело запроса POST /login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Resume: резюме пользователя.
//
// Поля:
//   - ID: идентификатор резюме, его присылает клиент (upsert по нему)
//   - Email: владелец
//   - Template: идентификатор шаблона (stem-modern и т.д.), сервер его не проверяет
//   - Data: произвольный JSON-документ с содержимым резюме
type Resume struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

// ExportRequest: тело запроса POST /export/.
type ExportRequest struct {
	Email    string         `json:"email"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
	Format   string         `json:"format"`
}

// MessageResponse: стандартный ответ с сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse: стандартный формат ошибки API.
//
// Detail: строка для доменных ошибок
// или список FieldError для ошибок валидации схемы.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// FieldError описывает одно нарушение схемы запроса.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Template: элемент каталога шаблонов.
type Template struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// HealthResponse: ответ /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Users  int    `json:"users"`
}
