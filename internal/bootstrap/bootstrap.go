// Package bootstrap wires configuration, database, services, controllers
// and the router together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Marcelo-Uk/student-management/internal/app/access"
	appControllers "github.com/Marcelo-Uk/student-management/internal/app/controllers"
	appMigrations "github.com/Marcelo-Uk/student-management/internal/app/migrations"
	appRepos "github.com/Marcelo-Uk/student-management/internal/app/repositories"
	appRoutes "github.com/Marcelo-Uk/student-management/internal/app/routes"
	appServices "github.com/Marcelo-Uk/student-management/internal/app/services"
	"github.com/Marcelo-Uk/student-management/internal/config"
	"github.com/Marcelo-Uk/student-management/internal/db"
	appMiddleware "github.com/Marcelo-Uk/student-management/internal/middleware"
	pkgAuth "github.com/Marcelo-Uk/student-management/internal/pkg/auth"
	"github.com/Marcelo-Uk/student-management/internal/pkg/helpers"
	"github.com/Marcelo-Uk/student-management/internal/pkg/logger"
	"github.com/Marcelo-Uk/student-management/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	AccountService    *appServices.AccountService
	AuthService       *appServices.AuthService
	AcademicService   *appServices.AcademicService
	AttendanceService *appServices.AttendanceService
	LeaveService      *appServices.LeaveService
	FeedbackService   *appServices.FeedbackService
	ResultService     *appServices.ResultService
	DashboardService  *appServices.DashboardService
	Controllers       appRoutes.Controllers
	SessionMiddleware *appMiddleware.SessionMiddleware
	Logger            zerolog.Logger
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		SessionExp:  helpers.ParseDuration(cfg.Session.Expiration, 12*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.AccountService = appServices.NewAccountService(
		deps.Repos.AccountStore,
		deps.Repos.IdentityRepository,
		deps.Repos.ProfileRepository,
		lgr,
	)
	deps.AuthService = appServices.NewAuthService(deps.Repos.IdentityRepository, deps.JWTService, lgr)
	deps.AcademicService = appServices.NewAcademicService(
		deps.Repos.CourseRepository,
		deps.Repos.SessionYearRepository,
		deps.Repos.SubjectRepository,
		lgr,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.ProfileRepository,
		lgr,
	)
	deps.LeaveService = appServices.NewLeaveService(deps.Repos.LeaveRepository, deps.Repos.ProfileRepository, lgr)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, deps.Repos.ProfileRepository, lgr)
	deps.ResultService = appServices.NewResultService(deps.Repos.ResultRepository, deps.Repos.ProfileRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.IdentityRepository,
		deps.Repos.ProfileRepository,
		deps.Repos.ProfileRepository,
		deps.Repos.CourseRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.LeaveRepository,
		lgr,
	)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.JWTService, cfg.Session.CookieName)

	deps.Controllers = appRoutes.Controllers{
		Auth: appControllers.NewAuthController(
			deps.AuthService,
			deps.JWTService,
			cfg.Session.CookieName,
			access.DefaultTargets,
			lgr,
		),
		Admin: appControllers.NewAdminController(
			deps.AccountService,
			deps.AcademicService,
			deps.AttendanceService,
			deps.LeaveService,
			deps.FeedbackService,
			deps.DashboardService,
			lgr,
		),
		Staff: appControllers.NewStaffController(
			deps.AcademicService,
			deps.AttendanceService,
			deps.LeaveService,
			deps.FeedbackService,
			deps.ResultService,
			deps.DashboardService,
			lgr,
		),
		Student: appControllers.NewStudentController(
			deps.AccountService,
			deps.AcademicService,
			deps.AttendanceService,
			deps.LeaveService,
			deps.FeedbackService,
			deps.ResultService,
			deps.DashboardService,
			lgr,
		),
		Profile: appControllers.NewProfileController(deps.AccountService, lgr),
	}

	return deps, nil
}

// SeedDefaultData provisions the default course, session year and admin
// account the portal depends on.
func SeedDefaultData(database *db.PostgresDB, deps *Dependencies, lgr zerolog.Logger) error {
	return seed.CreateDefaultData(context.Background(), database.Pool, deps.AccountService, lgr)
}

// SetupRouter configures the Gin engine with middleware and routes, and
// validates that every registered route carries an access realm.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if _, err := appRoutes.SetupRouter(router, deps.Controllers, deps.SessionMiddleware, access.DefaultTargets); err != nil {
		return nil, fmt.Errorf("route registration failed: %w", err)
	}

	return router, nil
}
