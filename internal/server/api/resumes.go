package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// ResumeSavedMessage: ответ на успешное сохранение резюме.
const ResumeSavedMessage = "Resume saved successfully"

// SaveResume сохраняет резюме (upsert по id в коллекции владельца).
//
// Если резюме с таким id уже есть: заменяется на своём месте,
// иначе добавляется в конец.
//
// @Summary      Save resume
// @Description  Upserts a resume by id inside the owner's collection.
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        request body models.Resume true "Resume"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} models.ErrorResponse "User not found"
// @Failure      422 {object} models.ErrorResponse "Bad JSON or schema violation"
// @Router       /resume/ [post]
func (h *Handler) SaveResume(w http.ResponseWriter, r *http.Request) {
	var body resumeBody
	if !h.decode(w, r, &body) {
		return
	}
	req := body.model()

	if err := h.Svc.Resumes.Save(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, serr.ErrUnknownOwner):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.internalError(w, "save resume failed", err,
				"email", req.Email,
				"resume_id", req.ID,
			)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: ResumeSavedMessage})
}

// ListResumes возвращает все резюме пользователя в порядке добавления.
//
// Неизвестный email: это не ошибка, ответ будет [].
//
// @Summary      List resumes
// @Tags         resumes
// @Produce      json
// @Param        email path string true "Owner email"
// @Success      200 {array} models.Resume
// @Router       /resumes/{email} [get]
func (h *Handler) ListResumes(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	// chi берёт параметр из RawPath, если он задан, и тогда он ещё закодирован (%40 вместо @).
	// Без RawPath параметр уже раскодирован, повторно не трогаем.
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(email); err == nil {
			email = decoded
		}
	}

	list, err := h.Svc.Resumes.List(r.Context(), email)
	if err != nil {
		h.internalError(w, "list resumes failed", err, "email", email)
		return
	}

	WriteJSON(w, http.StatusOK, list)
}
