package controllers

import (
	"deskgauge/internal/middleware"
	"deskgauge/internal/models"
	"deskgauge/internal/services"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// widgetPage is the data the widget template is rendered with
type widgetPage struct {
	models.Frame
	Token  string
	Width  int
	Height int
}

// ServeWidget renders the widget page with a fresh control token
func ServeWidget(c *gin.Context) {
	loop := services.GetDisplayLoop()
	if loop == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "widget not running"})
		return
	}

	frame, ok := loop.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "widget not ready"})
		return
	}

	session := fmt.Sprintf("%s-%d", c.ClientIP(), time.Now().UnixNano())
	token, err := services.GenerateToken(session)
	if err != nil {
		log.Printf("[AUTH] Token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	if middleware.GlobalSecurityLogger != nil {
		middleware.GlobalSecurityLogger.LogTokenGenerated(c.ClientIP(), session)
	}

	c.HTML(http.StatusOK, "widget.html", widgetPage{
		Frame:  frame,
		Token:  token,
		Width:  frame.Window.Width,
		Height: frame.Window.Height,
	})
}
