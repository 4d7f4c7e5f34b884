// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"academy/config"
	"academy/internal/domain/service"
)

// jwtTokenService verifies identity-provider session tokens. The service
// never issues tokens; the provider signs them and this side only checks the
// signature and reads the claims.
type jwtTokenService struct {
	sessionKey string
	issuer     string
}

// NewJWTTokenService is the constructor for jwtTokenService.
func NewJWTTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SessionKey == "" {
		return nil, errors.New("auth session key must be provided")
	}

	return &jwtTokenService{
		sessionKey: cfg.Auth.SessionKey,
		issuer:     cfg.Auth.Issuer,
	}, nil
}

// VerifySessionToken validates the token signature and expiry and extracts
// the identity claims.
func (s *jwtTokenService) VerifySessionToken(tokenString string) (*service.Identity, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(s.sessionKey), nil
	}, options...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("token missing subject claim")
	}

	return &service.Identity{
		UserID:   sub,
		Name:     stringClaim(claims, "name"),
		Email:    stringClaim(claims, "email"),
		ImageURL: stringClaim(claims, "picture"),
		Role:     stringClaim(claims, "role"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}

	return ""
}
