package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
)

const defaultTokenTTL = 24 * time.Hour

// Authenticator valida os tokens emitidos pelo serviço de login do dashboard
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueToken(claims domain.Claims) (string, error)
}

type Service struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(cfg config.Auth) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		secret:   []byte(cfg.Secret),
		tokenTTL: ttl,
		now:      time.Now,
	}
}

// IssueToken assina as claims com HS256. Usado pela CLI para gerar tokens de desenvolvimento.
func (s *Service) IssueToken(claims domain.Claims) (string, error) {
	if len(s.secret) == 0 {
		return "", NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "AUTH_SECRET vazio")
	}

	claims.UserEmail = handleEmail(claims.UserEmail)
	if claims.UserEmail == "" {
		return "", NewAuthError(ErrMissingSubject, apiErrors.ErrMissingRequiredData, "")
	}

	if claims.UserRoleID != domain.RoleAdmin && claims.UserRoleID != domain.RoleClient {
		return "", NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, fmt.Sprintf("role_id %d", claims.UserRoleID))
	}

	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserEmail,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
