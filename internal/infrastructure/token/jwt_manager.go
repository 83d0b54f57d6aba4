package token

import (
	"errors"
	"os"
	"time"

	"aquashield/internal/domain/entities"
	"aquashield/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")
var ErrInvalidToken = errors.New("invalid token")

const defaultTokenTTL = 24 * time.Hour

// JWTManager signs and validates HS256 bearer tokens carrying the user id
// and email. TTL defaults to 24h; JWT_TTL_HOURS overrides it.

type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

var _ interfaces.ITokenManager = (*JWTManager)(nil)

func NewJWTManager() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if d, err := time.ParseDuration(v + "h"); err == nil && d > 0 {
			ttl = d
		}
	}

	return &JWTManager{secret: []byte(secret), ttl: ttl}, nil
}

func (m *JWTManager) Generate(user entities.User) (string, error) {
	if user.ID == "" {
		return "", ErrInvalidToken
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTManager) Validate(tokenString string) (interfaces.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}

	userID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}

	return interfaces.TokenClaims{UserID: userID, Email: email}, nil
}
