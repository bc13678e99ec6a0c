package routes

import (
	"deskgauge/internal/middleware"
	"deskgauge/web"
	"fmt"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine serving the widget. Every route is restricted
// to loopback clients.
func NewRouter() (*gin.Engine, error) {
	r := gin.New()
	// ClientIP must come from the socket, never from forwarding headers
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to configure trusted proxies: %w", err)
	}
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.IPWhitelistMiddleware(middleware.NewIPWhitelist(nil)))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse widget templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	RegisterWidgetRoutes(r)
	RegisterMetricsRoutes(r)
	RegisterTrayRoutes(r, middleware.NewRateLimiter(5, 10))

	return r, nil
}
