package controllers

import (
	"deskgauge/internal/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func PostTrayTheme(c *gin.Context) {
	sendTrayEvent(c, services.EventToggleTheme)
}

func PostTrayExit(c *gin.Context) {
	sendTrayEvent(c, services.EventExit)
}

func PostTrayShow(c *gin.Context) {
	sendTrayEvent(c, services.EventRestore)
}

func sendTrayEvent(c *gin.Context, eventType services.EventType) {
	loop := services.GetDisplayLoop()
	if loop == nil || !loop.Send(services.ShellEvent{Type: eventType}) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "widget not running"})
		return
	}

	log.Printf("[TRAY] %s from %s", eventType, c.ClientIP())
	c.JSON(http.StatusAccepted, gin.H{"event": eventType})
}
