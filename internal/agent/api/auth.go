// В этом файле описаны методы клиента для регистрации и входа.
package api

import "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"

// Signup регистрирует пользователя на сервере.
//
// Метод отправляет POST запрос на /signup/ и возвращает публичные поля пользователя.
// Если email уже занят, вернётся *APIError с Detail "Email already registered".
func (c *Client) Signup(email, password, name string) (models.User, error) {
	var resp models.User
	err := c.PostJSON("/signup/", models.SignupRequest{Email: email, Password: password, Name: name}, &resp)
	return resp, err
}

// Login проверяет email и пароль.
//
// Сервер токенов не выдаёт, в ответе только {id, email, name}.
func (c *Client) Login(email, password string) (models.User, error) {
	var resp models.User
	err := c.PostJSON("/login/", models.LoginRequest{Email: email, Password: password}, &resp)
	return resp, err
}
