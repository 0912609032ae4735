// Package api реализует HTTP-слой сервера конструктора резюме.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - проверку тела запроса по схеме до вызова сервисов;
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и {"detail": ...}.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// DefaultMaxBodyBytes: лимит тела запроса, если он не задан в конфиге.
const DefaultMaxBodyBytes int64 = 1 << 20

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Validator: проверка тел запросов по схеме.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc          *service.Services
	Log          *logger.HTTPLogger
	Validator    *Validator
	MaxBodyBytes int64
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// maxBodyBytes <= 0 означает лимит по умолчанию.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{
		Svc:          svc,
		Log:          log,
		Validator:    NewValidator(),
		MaxBodyBytes: maxBodyBytes,
	}
}

// WriteJSON пишет v в ответ с переданным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, models.ErrorResponse{Detail: err.Error()})
}

// decode читает тело запроса в dst и проверяет его по схеме.
//
// Если что-то не так, ответ уже записан и возвращается false:
//   - 413: тело больше лимита;
//   - 422 {"detail":"bad json"}: тело не JSON или после объекта есть что-то ещё;
//   - 422 {"detail":[...]}: JSON не соответствует схеме.
//
// Числа читаются как json.Number, чтобы data сохранялась без потери точности.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)

	dec := json.NewDecoder(body)
	dec.UseNumber()

	err := dec.Decode(dst)
	if err == nil {
		err = expectEOF(dec)
	}
	if err == nil {
		err = h.Validator.Struct(dst)
	}
	if err == nil {
		return true
	}

	var (
		tooLarge *http.MaxBytesError
		verr     *ValidationError
	)
	switch {
	case errors.As(err, &tooLarge):
		WriteError(w, http.StatusRequestEntityTooLarge, serr.ErrPayloadTooLarge)
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Detail: verr.Fields})
	default:
		if fields, ok := typeErrorFields(err); ok {
			WriteJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Detail: fields})
			return false
		}
		WriteError(w, http.StatusUnprocessableEntity, serr.ErrBadJSON)
	}
	return false
}

// expectEOF проверяет, что в теле был ровно один JSON-документ.
func expectEOF(dec *json.Decoder) error {
	var extra json.RawMessage
	err := dec.Decode(&extra)
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
	}
	return serr.ErrBadJSON
}

// internalError логирует неожиданную ошибку и отдаёт 500 без подробностей.
func (h *Handler) internalError(w http.ResponseWriter, msg string, err error, kv ...any) {
	h.Log.Logger.Sugar().Errorw(msg, append([]any{"error", err}, kv...)...)
	WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
}
