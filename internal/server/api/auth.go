// HTTP-хендлеры регистрации и логина
package api

import (
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
)

// Signup обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 200 OK: пользователь создан, в ответе {id, email, name};
//   - 400 Bad Request: email уже зарегистрирован;
//   - 422 Unprocessable Entity: неверный JSON или поля не по схеме;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign up
// @Description  Creates a user and an empty resume collection for the email.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.SignupRequest true "Signup request"
// @Success      200 {object} models.User
// @Failure      400 {object} models.ErrorResponse "Email already registered"
// @Failure      422 {object} models.ErrorResponse "Bad JSON or schema violation"
// @Router       /signup/ [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupBody
	if !h.decode(w, r, &body) {
		return
	}
	req := body.model()

	user, err := h.Svc.Users.Signup(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrDuplicateEmail):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.internalError(w, "signup failed", err, "email", req.Email)
		}
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Login проверяет email и пароль и возвращает публичные поля пользователя.
//
// Ответы:
//   - 200 OK: {id, email, name};
//   - 400 Bad Request: неверный email или пароль (одно и то же сообщение);
//   - 422 Unprocessable Entity: неверный JSON или поля не по схеме;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Log in
// @Description  Checks credentials. Unknown email and wrong password give the same answer.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.LoginRequest true "Login request"
// @Success      200 {object} models.User
// @Failure      400 {object} models.ErrorResponse "Incorrect email or password"
// @Failure      422 {object} models.ErrorResponse "Bad JSON or schema violation"
// @Router       /login/ [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if !h.decode(w, r, &body) {
		return
	}
	req := body.model()

	user, err := h.Svc.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.internalError(w, "login failed", err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, user)
}
