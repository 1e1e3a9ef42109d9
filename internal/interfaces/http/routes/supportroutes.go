package routes

import (
	"github.com/gin-gonic/gin"

	supporthandlers "supportal/internal/interfaces/http/handlers/support"
	tokenhandlers "supportal/internal/interfaces/http/handlers/token"
	"supportal/internal/interfaces/http/middleware"
)

type SupportRouteConfig struct {
	SupportHandler *supporthandlers.SupportHandler
	TokenHandler   *tokenhandlers.TokenHandler
	AdminPassword  string
	// RateLimiter guards the public write endpoints; nil disables limiting.
	RateLimiter *middleware.RateLimiter
}

func SetupSupportRoutes(engine *gin.Engine, config *SupportRouteConfig) {
	api := engine.Group("/api/support")
	{
		public := api.Group("")
		if config.RateLimiter != nil {
			public.Use(config.RateLimiter.Limit())
		}
		public.POST("/submit", config.SupportHandler.SubmitRequest)
		public.POST("/messages", config.SupportHandler.AddMessage)

		// Dual-auth endpoints: the handler dispatches on token vs admin
		// password, so no middleware here.
		api.GET("/requests", config.SupportHandler.ListRequests)
		api.GET("/requests/:id", config.SupportHandler.GetRequest)

		admin := api.Group("")
		admin.Use(middleware.AdminAuth(config.AdminPassword))
		{
			admin.PATCH("/requests/:id", config.SupportHandler.UpdateRequest)

			admin.GET("/tokens", config.TokenHandler.ListTokens)
			admin.POST("/tokens", config.TokenHandler.CreateToken)
			admin.DELETE("/tokens", config.TokenHandler.DeleteToken)
		}
	}
}
