package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/victoriayuechen/tarecruit/internal/app/controllers"
	appMigrations "github.com/victoriayuechen/tarecruit/internal/app/migrations"
	appRepos "github.com/victoriayuechen/tarecruit/internal/app/repositories"
	appRoutes "github.com/victoriayuechen/tarecruit/internal/app/routes"
	appServices "github.com/victoriayuechen/tarecruit/internal/app/services"
	"github.com/victoriayuechen/tarecruit/internal/config"
	"github.com/victoriayuechen/tarecruit/internal/db"
	appMiddleware "github.com/victoriayuechen/tarecruit/internal/middleware"
	pkgAuth "github.com/victoriayuechen/tarecruit/internal/pkg/auth"
	"github.com/victoriayuechen/tarecruit/internal/pkg/helpers"
	"github.com/victoriayuechen/tarecruit/internal/pkg/interservice"
	"github.com/victoriayuechen/tarecruit/internal/pkg/logger"
	"github.com/victoriayuechen/tarecruit/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	CourseService          *appServices.CourseService
	ApplicationService     *appServices.ApplicationService
	TaService              *appServices.TaService
	NotificationService    *appServices.NotificationService
	AuthController         *appControllers.AuthController
	CourseController       *appControllers.CourseController
	ApplicationController  *appControllers.ApplicationController
	TaController           *appControllers.TaController
	NotificationController *appControllers.NotificationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	PeerGateway            appServices.PeerGateway
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).
		Strs("services", cfg.Server.Services).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 10*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	peerClient := interservice.NewClient(
		helpers.ParseDuration(cfg.Peers.CallTimeout, interservice.DefaultTimeout),
		lgr,
	)
	deps.PeerGateway = appServices.NewHTTPPeerGateway(peerClient, appServices.PeerURLs{
		AuthBaseURL:         cfg.Peers.AuthBaseURL,
		CourseBaseURL:       cfg.Peers.CourseBaseURL,
		TaBaseURL:           cfg.Peers.TaBaseURL,
		NotificationBaseURL: cfg.Peers.NotificationBaseURL,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.PeerGateway)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.ApplicationRepository, deps.PeerGateway, lgr)
	deps.TaService = appServices.NewTaService(
		deps.Repos.ContractRepository,
		deps.Repos.ReviewRepository,
		deps.Repos.WorkloadRepository,
		deps.PeerGateway,
	)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.TaController = appControllers.NewTaController(deps.TaService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		cfg,
		deps.AuthController,
		deps.CourseController,
		deps.ApplicationController,
		deps.TaController,
		deps.NotificationController,
		deps.AuthMiddleware,
	)

	return router
}
