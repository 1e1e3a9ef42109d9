package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	supportusecases "supportal/internal/application/support/usecases"
	tokenusecases "supportal/internal/application/token/usecases"
	"supportal/internal/infrastructure/config"
	"supportal/internal/infrastructure/email"
	"supportal/internal/infrastructure/repository"
	supporthandlers "supportal/internal/interfaces/http/handlers/support"
	tokenhandlers "supportal/internal/interfaces/http/handlers/token"
	"supportal/internal/interfaces/http/middleware"
	"supportal/internal/interfaces/http/routes"
	"supportal/internal/shared/db"
	"supportal/internal/shared/logger"
	"supportal/internal/shared/utils"
)

// Router wires the HTTP surface: repositories, use cases, handlers, and
// middleware.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the gin engine with all dependencies. The attachment
// store is injected because its selection (S3 vs local) happens at startup.
func NewRouter(database *gorm.DB, cfg *config.Config, store supportusecases.AttachmentStore, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" || cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	tokenRepo := repository.NewTokenRepository(database)
	requestRepo := repository.NewRequestRepository(database)
	messageRepo := repository.NewMessageRepository(database)
	imageRepo := repository.NewImageRepository(database)

	txManager := db.NewTransactionManager(database)
	mailer := email.NewMailer(&cfg.Email, log)

	submitUC := supportusecases.NewSubmitRequestUseCase(tokenRepo, requestRepo, imageRepo, store, mailer, log)
	updateUC := supportusecases.NewUpdateRequestUseCase(requestRepo, messageRepo, tokenRepo, txManager, mailer, cfg.Server.PortalBaseURL, log)
	addMessageUC := supportusecases.NewAddMessageUseCase(tokenRepo, requestRepo, messageRepo, mailer, log)
	listClientUC := supportusecases.NewListClientRequestsUseCase(tokenRepo, requestRepo, log)
	adminListUC := supportusecases.NewAdminListRequestsUseCase(requestRepo, tokenRepo, log)
	getRequestUC := supportusecases.NewGetRequestUseCase(tokenRepo, requestRepo, messageRepo, imageRepo, log)

	createTokenUC := tokenusecases.NewCreateTokenUseCase(tokenRepo, log)
	listTokensUC := tokenusecases.NewListTokensUseCase(tokenRepo, requestRepo, log)
	deleteTokenUC := tokenusecases.NewDeleteTokenUseCase(tokenRepo, requestRepo, log)

	supportHandler := supporthandlers.NewSupportHandler(
		submitUC,
		updateUC,
		addMessageUC,
		listClientUC,
		adminListUC,
		getRequestUC,
		cfg.Admin.Password,
	)
	tokenHandler := tokenhandlers.NewTokenHandler(createTokenUC, listTokensUC, deleteTokenUC)

	routes.SetupSupportRoutes(engine, &routes.SupportRouteConfig{
		SupportHandler: supportHandler,
		TokenHandler:   tokenHandler,
		AdminPassword:  cfg.Admin.Password,
		RateLimiter:    newRateLimiter(cfg, log),
	})

	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func newRateLimiter(cfg *config.Config, log logger.Interface) *middleware.RateLimiter {
	if !cfg.RateLimit.Enabled || !cfg.Redis.IsConfigured() {
		log.Info("rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	return middleware.NewRateLimiter(client, cfg.RateLimit.Requests, window)
}
