package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/zulezhe/env-manager/internal/model"
)

// Claims represents elevation token claims.
type Claims struct {
	jwt.RegisteredClaims
	Elevated  bool   `json:"elevated"`
	TokenType string `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey, ttl: elevatedTTL, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

const (
	elevatedTTL  = 15 * time.Minute
	typeElevated = "elevated"
	issuer       = "env-manager"
)

// GenerateElevatedToken creates a short-lived token granting system scope writes.
func (j *JWT) GenerateElevatedToken(subject string) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Elevated:  true,
		TokenType: typeElevated,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign elevated token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates a token and returns the privilege it grants.
func (j *JWT) ParseToken(tokenString string) (model.Privilege, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(j.now))
	if err != nil {
		return model.Privilege{}, fmt.Errorf("%w: %w", model.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return model.Privilege{}, model.ErrTokenInvalid
	}
	if claims.TokenType != typeElevated {
		return model.Privilege{}, fmt.Errorf("%w: token type mismatch: %s", model.ErrTokenInvalid, claims.TokenType)
	}
	return model.Privilege{Subject: claims.Subject, Elevated: claims.Elevated}, nil
}
