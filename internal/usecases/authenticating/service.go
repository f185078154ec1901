// Package authenticating libera o painel a partir de um código de acesso
// compartilhado e emite o JWT usado nas rotas protegidas
package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/market-intelligence-api/internal/config"
	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

const (
	defaultTokenTTL = 12 * time.Hour
	tokenIDLength   = 21
	tokenIssuer     = "market-intelligence-api"
)

type Authenticator interface {
	Unlock(accessCode string) (*domain.UnlockResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

// Unlock compara o código com o hash de administrador e depois com o de leitura
func (s *Service) Unlock(accessCode string) (*domain.UnlockResponse, error) {
	accessCode = strings.TrimSpace(accessCode)
	if accessCode == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Código de acesso é obrigatório")
	}

	if s.cfg.Auth.AdminAccessCodeHash == "" && s.cfg.Auth.ViewerAccessCodeHash == "" {
		return nil, NewAuthError(ErrAccessNotConfigured, apiErrors.ErrAccessNotConfigured, "")
	}

	role, ok := s.matchRole(accessCode)
	if !ok {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	token, expiresAt, err := s.generateJWT(role)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithField("role", role).Info("Painel liberado por código de acesso")

	return &domain.UnlockResponse{
		Token:     token,
		Role:      role,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *Service) matchRole(accessCode string) (string, bool) {
	candidates := []struct {
		role string
		hash string
	}{
		{role: domain.RoleAdmin, hash: s.cfg.Auth.AdminAccessCodeHash},
		{role: domain.RoleViewer, hash: s.cfg.Auth.ViewerAccessCodeHash},
	}

	for _, candidate := range candidates {
		if candidate.hash == "" {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(candidate.hash), []byte(accessCode)); err == nil {
			return candidate.role, true
		}
	}

	return "", false
}

func (s *Service) generateJWT(role string) (string, time.Time, error) {
	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	tokenID, err := utils.GenerateID(tokenIDLength)
	if err != nil {
		return "", time.Time{}, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)

	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if claims.Role != domain.RoleAdmin && claims.Role != domain.RoleViewer {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "papel desconhecido")
	}

	return claims, nil
}
