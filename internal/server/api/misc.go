package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// Тексты служебных эндпоинтов
const (
	RootMessage    = "Hello World"
	BackendMessage = "Hello from the backend!"
)

// Root - GET /.
//
// @Summary  Root greeting
// @Tags     misc
// @Produce  json
// @Success  200 {object} models.MessageResponse
// @Router   / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: RootMessage})
}

// Message - GET /api/message, фронтенд дёргает его для проверки связи.
//
// @Summary  Backend greeting
// @Tags     misc
// @Produce  json
// @Success  200 {object} models.MessageResponse
// @Router   /api/message [get]
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: BackendMessage})
}

// Health - GET /healthz.
//
// @Summary  Health check
// @Tags     misc
// @Produce  json
// @Success  200 {object} models.HealthResponse
// @Router   /healthz [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.Health.Check())
}

// Templates - GET /templates/?category=STEM, каталог шаблонов резюме.
//
// @Summary  List resume templates
// @Tags     templates
// @Produce  json
// @Param    category query string false "STEM | Business | Humanities"
// @Success  200 {array} models.Template
// @Router   /templates/ [get]
func (h *Handler) Templates(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.Templates.List(r.URL.Query().Get("category")))
}
