package routes

import (
	"deskgauge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMetricsRoutes(r gin.IRouter) {
	metrics := r.Group("/metrics")
	{
		metrics.GET("/", controllers.GetSnapshot)
		metrics.GET("/frame", controllers.GetFrame)
	}
}
