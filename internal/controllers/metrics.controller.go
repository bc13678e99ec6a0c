package controllers

import (
	"deskgauge/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSnapshot returns the values behind the latest frame
func GetSnapshot(c *gin.Context) {
	loop := services.GetDisplayLoop()
	if loop == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "widget not running"})
		return
	}

	reading, ok := loop.LatestReading()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no sample taken yet"})
		return
	}
	c.JSON(http.StatusOK, reading)
}

// GetFrame returns the latest rendered frame
func GetFrame(c *gin.Context) {
	loop := services.GetDisplayLoop()
	if loop == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "widget not running"})
		return
	}

	frame, ok := loop.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no frame rendered yet"})
		return
	}
	c.JSON(http.StatusOK, frame)
}
