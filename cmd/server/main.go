// @title           Resume Builder API
// @version         1.0
// @description     Backend of the resume builder.
// @description     Provides signup/login, resume storage and a stub export endpoint.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /
// @schemes http https
//
// Package main содержит точку входа сервера конструктора резюме.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - создание логгера, репозиториев в памяти, сервисов и HTTP-обработчиков;
//   - запуск сервера (HTTPS, если tls.enabled, иначе HTTP);
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Все данные живут в памяти процесса и теряются при рестарте.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/api"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/config"
	h "github.com/IvanChernomyrdin/go-resume-builder/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/repository"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/service"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-resume-builder/swagger/docs"
)

func main() {
	configPath := flag.String("config", "./configs/server.yaml", "path to server.yaml")
	flag.Parse()

	// .env необязателен, ошибку покажем после создания логгера
	envErr := godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	httpLogger, err := logger.NewHTTPLogger(logger.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Console:    cfg.Log.Console,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer httpLogger.Sync()

	sugar := httpLogger.Sugar()
	if envErr != nil {
		sugar.Warnf("no .env file loaded, error: %v", envErr)
	}

	// создаём репы
	repos := service.Repositories{
		Users:   repository.NewUsersRepository(),
		Resumes: repository.NewResumesRepository(),
	}
	// создаём сервисы
	svc := service.NewServices(repos)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, cfg.Server.MaxBodyBytes)
	// создаём роутер
	router := h.NewRouter(handler, cfg.CORS)

	addr := cfg.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		var err error
		if cfg.TLS.Enabled {
			sugar.Infof("server started on https://%s (env=%s)", addr, cfg.Env)
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			sugar.Infof("server started on http://%s (env=%s)", addr, cfg.Env)
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		// ctx уже отменён, поэтому таймаут считаем от Background
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
