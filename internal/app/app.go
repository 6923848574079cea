package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/internsetu/internship-service/internal/config"
	"github.com/internsetu/internship-service/internal/delivery/httpd"
	"github.com/internsetu/internship-service/internal/repository"
	"github.com/internsetu/internship-service/internal/service"
	"github.com/internsetu/internship-service/internal/service/integration"
	"github.com/internsetu/internship-service/internal/session"
)

type App struct {
	server   *http.Server
	logger   zerolog.Logger
	config   *config.Config
	db       *sql.DB
	sessions session.Store
	events   integration.EventPublisher
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL)

	events, err := integration.NewRabbitMQPublisher(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.Exchange,
		cfg.RabbitMQ.RoutingKey,
		cfg.RabbitMQ.QueueName,
		log,
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create RabbitMQ publisher, continuing without events")
		events = nil
	}

	accountRepo := repository.NewAccountRepository(db, log)
	internshipRepo := repository.NewInternshipRepository(db, log)
	applicationRepo := repository.NewApplicationRepository(db, log)

	accountService := service.NewAccountService(accountRepo, log)
	internshipService := service.NewInternshipService(internshipRepo, applicationRepo, log)
	applicationService := service.NewApplicationService(
		applicationRepo,
		internshipRepo,
		accountRepo,
		events,
		log,
	)

	if cfg.Seed.Enabled {
		seedService := service.NewSeedService(internshipRepo, cfg.Seed.Path, log)
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := seedService.Run(seedCtx); err != nil {
			return nil, err
		}
	}

	handler := httpd.NewHandler(
		accountService,
		internshipService,
		applicationService,
		sessions,
		cfg.Session,
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

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
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:   server,
		logger:   log,
		config:   cfg,
		db:       db,
		sessions: sessions,
		events:   events,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting internship service on %s", a.config.Server.Address)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down internship service...")

	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if a.sessions != nil {
		if err := a.sessions.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close session store")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return a.server.Shutdown(ctx)
}
