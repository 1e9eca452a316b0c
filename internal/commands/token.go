package commands

import (
	"crypto/rsa"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
)

const (
	accessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// GenToken issues an access/refresh token pair for the given identity,
// signed with the RSA key at privateKeyFile.
func GenToken(data auth.TokenParams, privateKeyFile string) (string, string, error) {
	privateKey, err := loadPrivateKey(privateKeyFile)
	if err != nil {
		return "", "", err
	}

	now := time.Now()

	accessToken, err := signToken(privateKey, auth.Claims{
		UserId:    data.ID,
		Role:      data.Role,
		TokenType: auth.TokenAccess,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
	})
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshToken, err := signToken(privateKey, auth.Claims{
		UserId:    data.ID,
		Role:      data.Role,
		TokenType: auth.TokenRefresh,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(RefreshTokenTTL).Unix(),
		},
	})
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens validates a token pair for the refresh flow. The access token
// is allowed to be expired; the refresh token must be fully valid.
func VerifyTokens(accessToken, refreshToken, privateKeyFile string) (auth.Claims, auth.Claims, error) {
	privateKey, err := loadPrivateKey(privateKeyFile)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, err
	}
	publicKey := &privateKey.PublicKey

	accessClaims, err := parseToken(publicKey, accessToken, true)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "verifying access token")
	}

	refreshClaims, err := parseToken(publicKey, refreshToken, false)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "verifying refresh token")
	}
	if refreshClaims.TokenType != auth.TokenRefresh {
		return auth.Claims{}, auth.Claims{}, errors.New("token is not a refresh token")
	}

	return accessClaims, refreshClaims, nil
}

func signToken(key *rsa.PrivateKey, claims auth.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}

func parseToken(key *rsa.PublicKey, tokenStr string, allowExpired bool) (auth.Claims, error) {
	var claims auth.Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		validationErr, ok := err.(*jwt.ValidationError)
		expiredOnly := ok && validationErr.Errors == jwt.ValidationErrorExpired
		if !(allowExpired && expiredOnly) {
			return auth.Claims{}, err
		}
		return claims, nil
	}
	if !token.Valid {
		return auth.Claims{}, errors.New("invalid token")
	}

	return claims, nil
}

func loadPrivateKey(privateKeyFile string) (*rsa.PrivateKey, error) {
	pem, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key file")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return privateKey, nil
}
