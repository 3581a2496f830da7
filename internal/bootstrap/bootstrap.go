package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/controllers"
	appRepos "github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/repositories"
	appRoutes "github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/routes"
	appServices "github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/services"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/config"
	appMiddleware "github.com/5-harshit-shrivastava/GoBaseraInterview/internal/middleware"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	Services               *appServices.Services
	AnnouncementController *appControllers.AnnouncementController
	CommentController      *appControllers.CommentController
	ReactionController     *appControllers.ReactionController
	CommentLimiter         *appMiddleware.RateLimiter
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

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the in-memory stores, services and
// controllers. There is no database to connect to; the stores start empty
// on every boot.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	repos := appRepos.NewRepositories()
	services := appServices.NewServices(repos, cfg.Noticeboard.CommentQuota, lgr)

	return &Dependencies{
		Repos:                  repos,
		Services:               services,
		AnnouncementController: appControllers.NewAnnouncementController(services.Announcement),
		CommentController:      appControllers.NewCommentController(services.Comment),
		ReactionController:     appControllers.NewReactionController(services.Reaction),
		CommentLimiter:         appMiddleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow()),
		Logger:                 lgr,
	}
}

// SetupRouter builds the gin engine with the shared middleware chain and
// registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.AnnouncementController,
		deps.CommentController,
		deps.ReactionController,
		deps.CommentLimiter,
	)

	return router
}
