package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/bkaya/studentportal/internal/app/controllers"
	appMigrations "github.com/bkaya/studentportal/internal/app/migrations"
	appRepos "github.com/bkaya/studentportal/internal/app/repositories"
	appRoutes "github.com/bkaya/studentportal/internal/app/routes"
	appServices "github.com/bkaya/studentportal/internal/app/services"
	"github.com/bkaya/studentportal/internal/config"
	"github.com/bkaya/studentportal/internal/db"
	appMiddleware "github.com/bkaya/studentportal/internal/middleware"
	pkgAuth "github.com/bkaya/studentportal/internal/pkg/auth"
	"github.com/bkaya/studentportal/internal/pkg/filestorage"
	"github.com/bkaya/studentportal/internal/pkg/helpers"
	"github.com/bkaya/studentportal/internal/pkg/logger"
	"github.com/bkaya/studentportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	DashboardService       appServices.DashboardService
	AnnouncementService    appServices.AnnouncementService
	MaterialService        appServices.MaterialService
	ChatService            appServices.ChatService
	TimetableService       appServices.TimetableService
	LeaveService           appServices.LeaveService
	NotificationService    appServices.NotificationService
	UserService            appServices.UserService
	MaintenanceService     appServices.MaintenanceService
	AuthController         *appControllers.AuthController
	DashboardController    *appControllers.DashboardController
	AnnouncementController *appControllers.AnnouncementController
	MaterialController     *appControllers.MaterialController
	ChatController         *appControllers.ChatController
	TimetableController    *appControllers.TimetableController
	LeaveController        *appControllers.LeaveController
	NotificationController *appControllers.NotificationController
	AdminController        *appControllers.AdminController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
	FileStorage            *filestorage.LocalStorage
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
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Startup continues without seed data
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Upload.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.NotificationService = appServices.NewNotificationService(
		deps.Repos.NotificationRepository,
		deps.Repos.UserRepository,
	)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.UserRepository,
		deps.Repos.AnnouncementRepository,
		deps.Repos.MaterialRepository,
		deps.Repos.MessageRepository,
		deps.Repos.TimetableRepository,
		deps.Repos.LeaveRepository,
		deps.NotificationService,
	)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository, deps.NotificationService)
	deps.MaterialService = appServices.NewMaterialService(deps.Repos.MaterialRepository, deps.FileStorage, cfg.Upload.AllowedExtensions)
	deps.ChatService = appServices.NewChatService(deps.Repos.MessageRepository, deps.Repos.UserRepository, deps.NotificationService)
	deps.TimetableService = appServices.NewTimetableService(deps.Repos.TimetableRepository, deps.Repos.UserRepository)
	deps.LeaveService = appServices.NewLeaveService(deps.Repos.LeaveRepository, deps.NotificationService)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.MaintenanceService = appServices.NewMaintenanceService(dbPool, func(ctx context.Context) error {
		return seed.CreateDefaultData(ctx, dbPool, lgr)
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService, lgr)
	deps.MaterialController = appControllers.NewMaterialController(deps.MaterialService, lgr)
	deps.ChatController = appControllers.NewChatController(deps.ChatService, lgr)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService, lgr)
	deps.LeaveController = appControllers.NewLeaveController(deps.LeaveService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.UserService, deps.MaintenanceService, lgr)

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
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())
	router.MaxMultipartMemory = cfg.MaxUploadSizeBytes()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DashboardController,
		deps.AnnouncementController,
		deps.MaterialController,
		deps.ChatController,
		deps.TimetableController,
		deps.LeaveController,
		deps.NotificationController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
