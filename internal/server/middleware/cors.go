package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/config"
)

// CORSMiddleware пускает фронтенд с dev-адресов из конфига:
// любые методы, любые заголовки, с credentials.
func CORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: cfg.Credentials(),
		MaxAge:           cfg.MaxAge,
	})
}
