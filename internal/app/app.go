package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/chojny89-del/grade/internal/config"
	"github.com/chojny89-del/grade/internal/delivery/httpd"
	"github.com/chojny89-del/grade/internal/repository"
	"github.com/chojny89-del/grade/internal/service"
	"github.com/chojny89-del/grade/internal/service/integration"
)

type App struct {
	server         *http.Server
	logger         zerolog.Logger
	config         *config.Config
	db             *sql.DB
	rabbitmqClient integration.RabbitMQClient
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	var rabbitmqClient integration.RabbitMQClient
	if cfg.RabbitMQ.Enabled {
		client, err := integration.NewRabbitMQClient(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			cfg.RabbitMQ.RoutingKey,
			cfg.RabbitMQ.QueueName,
			log,
		)
		if err != nil {
			// Grading keeps working without a broker; events are just dropped.
			log.Error().Err(err).Msg("Failed to create RabbitMQ client")
		} else {
			rabbitmqClient = client
		}
	}

	userRepo := repository.NewUserRepository(db, log)
	classRepo := repository.NewClassRepository(db, log)
	enrollmentRepo := repository.NewEnrollmentRepository(db, log)
	assignmentRepo := repository.NewAssignmentRepository(db, log)
	rubricRepo := repository.NewRubricRepository(db, log)
	submissionRepo := repository.NewSubmissionRepository(db, log)
	gradeRepo := repository.NewGradeRepository(db, log)

	authService := service.NewAuthService(userRepo, log)
	classService := service.NewClassService(classRepo, enrollmentRepo, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, userRepo, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, log)
	rubricService := service.NewRubricService(rubricRepo, log)
	submissionService := service.NewSubmissionService(submissionRepo, log)
	gradeService := service.NewGradeService(gradeRepo, submissionRepo, assignmentRepo, rabbitmqClient, log)
	exportService := service.NewExportService(gradeRepo, assignmentRepo, log)

	handler := httpd.NewHandler(
		authService,
		classService,
		enrollmentService,
		assignmentService,
		rubricService,
		submissionService,
		gradeService,
		exportService,
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
		server:         server,
		logger:         log,
		config:         cfg,
		db:             db,
		rabbitmqClient: rabbitmqClient,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting grading service on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down grading service...")

	if a.rabbitmqClient != nil {
		if err := a.rabbitmqClient.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return a.server.Shutdown(ctx)
}
