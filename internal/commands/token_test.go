package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
)

func writeTestKey(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	path := filepath.Join(t.TempDir(), "private.pem")
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatalf("writing key: %v", err)
	}

	return path
}

func TestGenTokenPair(t *testing.T) {
	keyFile := writeTestKey(t)

	accessToken, refreshToken, err := GenToken(auth.TokenParams{ID: 7, Role: auth.RoleEmployee}, keyFile)
	if err != nil {
		t.Fatalf("GenToken() error: %v", err)
	}

	accessClaims, refreshClaims, err := VerifyTokens(accessToken, refreshToken, keyFile)
	if err != nil {
		t.Fatalf("VerifyTokens() error: %v", err)
	}
	if accessClaims.UserId != 7 || accessClaims.Role != auth.RoleEmployee {
		t.Errorf("access claims = %+v, want user 7 with role %s", accessClaims, auth.RoleEmployee)
	}
	if accessClaims.TokenType != auth.TokenAccess {
		t.Errorf("access token type = %q, want %q", accessClaims.TokenType, auth.TokenAccess)
	}
	if refreshClaims.TokenType != auth.TokenRefresh {
		t.Errorf("refresh token type = %q, want %q", refreshClaims.TokenType, auth.TokenRefresh)
	}
}

func TestValidateTokenRejectsRefreshAsBearer(t *testing.T) {
	keyFile := writeTestKey(t)

	accessToken, refreshToken, err := GenToken(auth.TokenParams{ID: 7, Role: auth.RoleEmployee}, keyFile)
	if err != nil {
		t.Fatalf("GenToken() error: %v", err)
	}

	a, err := auth.New(keyFile)
	if err != nil {
		t.Fatalf("auth.New() error: %v", err)
	}

	if _, err := a.ValidateToken(accessToken); err != nil {
		t.Errorf("ValidateToken(access) error: %v", err)
	}

	if _, err := a.ValidateToken(refreshToken); err == nil {
		t.Error("ValidateToken(refresh) accepted a refresh token as a bearer credential")
	}
}
