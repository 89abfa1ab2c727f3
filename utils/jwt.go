package utils

import (
	"errors"
	"time"

	"saarthi/config"
	"saarthi/models"

	"github.com/golang-jwt/jwt"
)

// tokenLifetime matches the 24-hour access-token expiry of the API contract.
const tokenLifetime = 24 * time.Hour

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT whose subject is the encoded identity
// string of the given principal.
func GenerateToken(p models.Principal) (string, error) {
	claims := jwt.MapClaims{
		"sub": EncodeIdentity(p),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// PrincipalFromToken validates a token string and decodes its subject into a
// principal. A malformed subject is an authentication failure, never a panic.
func PrincipalFromToken(tokenString string) (models.Principal, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.Principal{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Principal{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.Principal{}, errors.New("token does not contain a valid 'sub' claim")
	}

	return DecodeIdentity(sub)
}
