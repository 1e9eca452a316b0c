// Package auth provides JWT validation for the two session kinds the
// product knows: employee sessions and admin sessions.
package auth

import (
	"context"
	"crypto/rsa"
	"net/http"
	"os"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// ctxKey represents the type of value for the context key.
type ctxKey int

// Key is used to store/retrieve Claims from a context.Context.
const Key ctxKey = 1

// TokenParams carries the identity baked into a new token pair.
type TokenParams struct {
	ID   int
	Role string
}

// Claims is the payload carried by every Shiftwise token.
type Claims struct {
	UserId    int    `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.StandardClaims
}

// Authorized reports whether the claims carry one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth validates tokens issued by commands.GenToken.
type Auth struct {
	publicKey *rsa.PublicKey
}

// New loads the RSA private key at the given path and keeps its public part
// for validation.
func New(privateKeyFile string) (*Auth, error) {
	pem, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key file")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return &Auth{publicKey: &privateKey.PublicKey}, nil
}

// ValidateToken checks the signature and standard claims of a bearer token
// and returns its payload. Only access tokens pass; refresh tokens are
// exchanged through the refresh endpoint and never act as credentials.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}
	if claims.TokenType != TokenAccess {
		return Claims{}, errors.Errorf("token type %q cannot be used as a bearer token", claims.TokenType)
	}

	return claims, nil
}

// GetClaims pulls the authenticated claims out of a request context.
func GetClaims(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}
	return claims, nil
}
