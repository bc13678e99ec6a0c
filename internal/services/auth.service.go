package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService signs the tokens that widget pages present on the control
// websocket and tray endpoints
type AuthService struct {
	secretKey   string
	tokenExpiry time.Duration
}

// CustomClaims represents the JWT claims structure
type CustomClaims struct {
	Session   string `json:"session"`
	UserAgent string `json:"user_agent"`
	jwt.RegisteredClaims
}

var authService *AuthService

// InitAuthService initializes the authentication service. With an empty
// secretKey a random key is generated for this process, so tokens never
// outlive the widget.
func InitAuthService(secretKey string, tokenExpiry time.Duration) *AuthService {
	if secretKey == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "deskgauge"
		}

		randomBytes := make([]byte, 16)
		if _, err := rand.Read(randomBytes); err != nil {
			// Fallback if random generation fails
			secretKey = fmt.Sprintf("deskgauge-%s-%d-backup", hostname, time.Now().UnixNano())
			log.Printf("⚠️  Warning: Random generation failed, using fallback key\n")
		} else {
			secretKey = fmt.Sprintf("deskgauge-%s-%s", hostname, hex.EncodeToString(randomBytes))
		}
	}

	if tokenExpiry == 0 {
		tokenExpiry = 24 * time.Hour
	}

	secretKey = strings.TrimSpace(secretKey)

	// Ensure secret key is at least 32 bytes for HMAC-SHA256
	if len(secretKey) < 32 {
		log.Printf("⚠️  Warning: Secret key is only %d bytes. Recommended minimum is 32 bytes for HMAC-SHA256\n", len(secretKey))
		needed := 32 - len(secretKey)
		paddingBytes := make([]byte, needed)
		_, _ = rand.Read(paddingBytes)
		secretKey = secretKey + hex.EncodeToString(paddingBytes)
	}

	authService = &AuthService{
		secretKey:   secretKey,
		tokenExpiry: tokenExpiry,
	}

	return authService
}

// GenerateToken creates a token for one widget page session
func GenerateToken(session string) (string, error) {
	if authService == nil {
		return "", fmt.Errorf("auth service not initialized")
	}

	now := time.Now()
	expiresAt := now.Add(authService.tokenExpiry)

	claims := CustomClaims{
		Session:   session,
		UserAgent: "deskgauge-widget",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "deskgauge",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(authService.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken verifies and parses a JWT token
func ValidateToken(tokenString string) (*CustomClaims, error) {
	if authService == nil {
		return nil, fmt.Errorf("auth service not initialized")
	}

	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(authService.secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
