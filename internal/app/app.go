package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/pixiegarden/english-backend/internal/config"
	"github.com/pixiegarden/english-backend/internal/delivery/httpd"
	"github.com/pixiegarden/english-backend/internal/docstore"
	"github.com/pixiegarden/english-backend/internal/service"
	"github.com/pixiegarden/english-backend/internal/service/integration"
)

type App struct {
	server    *http.Server
	logger    zerolog.Logger
	config    *config.Config
	store     *docstore.Store
	publisher integration.EventPublisher
}

func New(cfg *config.Config, log zerolog.Logger, store *docstore.Store) (*App, error) {
	var publisher integration.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		var err error
		publisher, err = integration.NewRabbitMQClient(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			cfg.RabbitMQ.RoutingKey,
			cfg.RabbitMQ.QueueName,
			log,
		)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create RabbitMQ client")
			// Продолжаем без RabbitMQ, события не критичны
			publisher = nil
		}
	}

	// Создаем сервисы
	catalogService := service.NewCatalogService(store, log)
	enrollmentService := service.NewEnrollmentService(store, publisher, log)

	// Создаем обработчики
	handler := httpd.NewHandler(catalogService, enrollmentService, store, log)

	// Создаем роутер
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Настраиваем CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:    server,
		logger:    log,
		config:    cfg,
		store:     store,
		publisher: publisher,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting english backend on %s", a.config.Server.Address())
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down english backend...")

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close document store")
		}
	}

	return a.server.Shutdown(ctx)
}
