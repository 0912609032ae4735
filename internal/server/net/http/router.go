// Package http реализует маршрутизацию HTTP-слоя сервера конструктора резюме.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - CORS для фронтенда.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/api"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/config"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Маршруты регистрируются без завершающего слэша,
// StripSlashes делает /signup/ и /signup одинаковыми.
func NewRouter(h *api.Handler, cors config.CORSConfig) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	// паника в хендлере не должна ронять процесс
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORSMiddleware(cors))
	r.Use(chimw.StripSlashes)

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", h.Root)
	r.Get("/api/message", h.Message)
	r.Get("/healthz", h.Health)
	r.Get("/templates", h.Templates)

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)

	r.Post("/resume", h.SaveResume)          // upsert по id
	r.Get("/resumes/{email}", h.ListResumes) // все резюме пользователя

	r.Post("/export", h.Export) // заглушка, файл не создаётся

	return r
}
