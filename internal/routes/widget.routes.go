package routes

import (
	"deskgauge/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterWidgetRoutes registers the widget page and its websocket
func RegisterWidgetRoutes(r gin.IRouter) {
	r.GET("/", controllers.ServeWidget)
	r.GET("/ws", controllers.HandleWebSocket)
}
