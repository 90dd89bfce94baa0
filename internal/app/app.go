package app

import (
	"fmt"

	"workaholic_backend/database"
	"workaholic_backend/internal/config"
	"workaholic_backend/internal/handlers"
	"workaholic_backend/internal/logger"
	"workaholic_backend/internal/middleware"
	"workaholic_backend/internal/repositories"
	"workaholic_backend/internal/routes"
	"workaholic_backend/internal/services"
	"workaholic_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run wires configuration, database, and HTTP server together and
// blocks serving requests.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := OpenDatabase(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("resolve database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	logger.Info("Database connection established", "driver", cfg.Database.Driver)

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	router := SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// OpenDatabase opens a gorm connection for the configured driver.
// TranslateError is required so unique-constraint violations surface
// as gorm.ErrDuplicatedKey across both drivers.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormCfg)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// SetupRouter builds the full handler chain. Split out from Run so
// tests can mount the router on httptest servers.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	profileService := services.NewProfileService(profileRepo, userRepo)
	container := &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, profileService),
		ProfileService:     profileService,
		JobService:         services.NewJobService(jobRepo, userRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, userRepo, jobRepo),
	}

	appHandlers := handlers.NewAppHandlers(container, validator.New())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, appHandlers)

	return router
}
