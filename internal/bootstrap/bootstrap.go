// Package bootstrap assembles the application: configuration, logging,
// database, dependency wiring and the gin engine.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tawan/eduadmin/internal/app/controllers"
	"github.com/tawan/eduadmin/internal/app/migrations"
	"github.com/tawan/eduadmin/internal/app/repositories"
	"github.com/tawan/eduadmin/internal/app/routes"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/config"
	"github.com/tawan/eduadmin/internal/db"
	"github.com/tawan/eduadmin/internal/middleware"
	pkgAuth "github.com/tawan/eduadmin/internal/pkg/auth"
	"github.com/tawan/eduadmin/internal/pkg/filestorage"
	"github.com/tawan/eduadmin/internal/pkg/helpers"
	"github.com/tawan/eduadmin/internal/pkg/logger"
	"github.com/tawan/eduadmin/internal/seed"
)

// Dependencies holds the wired application graph
type Dependencies struct {
	Repos          *repositories.Repositories
	Services       *services.Services
	Controllers    *routes.Controllers
	AuthMiddleware *middleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the connection pool, runs migrations and seeds the
// reference data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := migrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, "/"+cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = services.NewServices(deps.Repos, deps.JWTService, deps.FileStorage)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = &routes.Controllers{
		Auth:        controllers.NewAuthController(deps.Services.Auth),
		Roles:       controllers.NewRoleController(deps.Services.Roles),
		Faculties:   controllers.NewFacultyController(deps.Services.Faculties),
		Departments: controllers.NewDepartmentController(deps.Services.Departments),
		Users:       controllers.NewUserController(deps.Services.Users),
		Profiles:    controllers.NewProfileController(deps.Services.Profiles),
		Courses:     controllers.NewCourseController(deps.Services.Courses),
		Classrooms:  controllers.NewClassroomController(deps.Services.Classrooms),
		Attendance:  controllers.NewAttendanceController(deps.Services.Attendance),
	}

	return deps, nil
}

// SetupRouter configures the gin engine with CORS, routes and static
// photo serving.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	lgr.Info().Strs("origins", cfg.Server.AllowedOrigins).Msg("CORS configured")

	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
