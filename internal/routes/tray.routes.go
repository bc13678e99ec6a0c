package routes

import (
	"deskgauge/internal/controllers"
	"deskgauge/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTrayRoutes(r gin.IRouter, limiter *middleware.RateLimiter) {
	tray := r.Group("/tray", middleware.RateLimitMiddleware(limiter), middleware.RequireToken())
	{
		tray.POST("/theme", controllers.PostTrayTheme)
		tray.POST("/exit", controllers.PostTrayExit)
		tray.POST("/show", controllers.PostTrayShow)
	}
}
