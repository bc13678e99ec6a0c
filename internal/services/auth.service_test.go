package services

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	InitAuthService("", time.Hour)

	token, err := GenerateToken("widget-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Session != "widget-1" {
		t.Errorf("Session: got %q", claims.Session)
	}
	if claims.Issuer != "deskgauge" {
		t.Errorf("Issuer: got %q", claims.Issuer)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	InitAuthService("a-secret-key-that-is-long-enough-for-hs256", time.Hour)

	token, err := GenerateToken("widget-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := ValidateToken(tampered); err == nil {
		t.Error("tampered token should not validate")
	}

	// a token from another process key is rejected
	InitAuthService("", time.Hour)
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with a previous key should not validate")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	InitAuthService("", time.Nanosecond)

	token, err := GenerateToken("widget-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)

	if _, err := ValidateToken(token); err == nil {
		t.Error("expired token should not validate")
	}
}
