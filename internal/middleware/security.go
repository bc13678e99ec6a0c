package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"
	"sync"

	"deskgauge/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Package-level security logger instance
var GlobalSecurityLogger *SecurityLogger

// RateLimiter implements token bucket rate limiting per IP
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
}

// NewRateLimiter creates a limiter allowing perSecond requests per IP
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

// GetLimiter gets or creates a limiter for an IP address
func (rl *RateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[ip] = limiter
	return limiter
}

// RateLimitMiddleware enforces rate limiting per IP
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.GetLimiter(ip).Allow() {
			log.Printf("[SECURITY] Rate limit exceeded for IP: %s", ip)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": 1,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; connect-src 'self' ws:")
		c.Header("Referrer-Policy", "no-referrer")
		c.Next()
	}
}

// IPWhitelist restricts access to whitelisted IPs. Loopback is always allowed.
type IPWhitelist struct {
	ips map[string]bool
	mu  sync.RWMutex
}

// NewIPWhitelist creates a new IP whitelist. An empty list admits loopback only.
func NewIPWhitelist(ips []string) *IPWhitelist {
	wl := &IPWhitelist{
		ips: make(map[string]bool),
	}
	for _, ip := range ips {
		wl.ips[ip] = true
	}
	return wl
}

// IsAllowed checks if an IP is whitelisted
func (wl *IPWhitelist) IsAllowed(ip string) bool {
	wl.mu.RLock()
	defer wl.mu.RUnlock()

	// Strip port from IP if present
	ipOnly, _, _ := net.SplitHostPort(ip)
	if ipOnly == "" {
		ipOnly = ip
	}

	if ipOnly == "localhost" {
		return true
	}
	if parsed := net.ParseIP(ipOnly); parsed != nil && parsed.IsLoopback() {
		return true
	}

	return wl.ips[ipOnly]
}

// IPWhitelistMiddleware enforces IP whitelisting
func IPWhitelistMiddleware(whitelist *IPWhitelist) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !whitelist.IsAllowed(ip) {
			log.Printf("[SECURITY] Access denied for non-whitelisted IP: %s", ip)
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireToken rejects requests without a valid widget token, taken from the
// Authorization header or the token query parameter
func RequireToken() gin.HandlerFunc {
	validator := NewInputValidator()
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" || !validator.ValidateToken(token) {
			if GlobalSecurityLogger != nil {
				GlobalSecurityLogger.LogFailedAuth(c.ClientIP(), "missing or malformed token")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(token)
		if err != nil {
			if GlobalSecurityLogger != nil {
				GlobalSecurityLogger.LogFailedAuth(c.ClientIP(), "invalid token: "+err.Error())
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("session", claims.Session)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header, falling back
// to the query parameter
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return c.Query("token")
}

// SecurityLogger logs security events
type SecurityLogger struct {
	mu sync.Mutex
}

// NewSecurityLogger creates a new security logger
func NewSecurityLogger() *SecurityLogger {
	sl := &SecurityLogger{}
	GlobalSecurityLogger = sl
	return sl
}

// LogFailedAuth logs failed authentication attempts
func (sl *SecurityLogger) LogFailedAuth(ip string, reason string) {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	log.Printf("[SECURITY-WARNING] Failed authentication from IP %s: %s", ip, reason)
}

// LogTokenGenerated logs token issue for a widget page
func (sl *SecurityLogger) LogTokenGenerated(ip string, session string) {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	log.Printf("[SECURITY] Token generated for session %s from IP %s", session, ip)
}

// LogWebSocketConnected logs successful WebSocket connections
func (sl *SecurityLogger) LogWebSocketConnected(ip string, session string) {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	log.Printf("[SECURITY] WebSocket connected for session %s from IP %s", session, ip)
}

// InputValidator validates and sanitizes user input
type InputValidator struct{}

// NewInputValidator creates a new input validator
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// ValidateToken checks if token format is valid
func (iv *InputValidator) ValidateToken(token string) bool {
	// JWT tokens are in format: header.payload.signature
	if len(token) < 20 || len(token) > 4096 {
		return false
	}
	return strings.Count(token, ".") == 2
}

// ValidatePointer checks that pointer coordinates are plausible screen positions
func (iv *InputValidator) ValidatePointer(x, y int) bool {
	const limit = 1 << 16
	return x > -limit && x < limit && y > -limit && y < limit
}
