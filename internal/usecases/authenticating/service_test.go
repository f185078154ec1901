package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/market-intelligence-api/internal/config"
	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
)

func hashCode(t *testing.T, code string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		cfg: &config.Config{
			SecretKey: "segredo-de-teste",
			Auth: config.Auth{
				AdminAccessCodeHash:  hashCode(t, "admin-123"),
				ViewerAccessCodeHash: hashCode(t, "viewer-123"),
				TokenTTL:             time.Hour,
			},
		},
		now: time.Now,
	}
}

func TestService_Unlock(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name     string
		code     string
		wantRole string
		wantErr  error
		wantCode string
	}{
		{name: "Código de administrador", code: "admin-123", wantRole: domain.RoleAdmin},
		{name: "Código de leitura com espaços", code: "  viewer-123 ", wantRole: domain.RoleViewer},
		{name: "Código incorreto", code: "errado", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "Código vazio", code: "   ", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := service.Unlock(tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.True(t, IsCredentialsError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, response.Role)
			assert.NotEmpty(t, response.Token)

			claims, err := service.ValidateToken(response.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, claims.Role)
			assert.Len(t, claims.ID, tokenIDLength)
			assert.Equal(t, response.ExpiresAt, claims.ExpiresAt.Unix())
		})
	}
}

func TestService_UnlockSemCodigosConfigurados(t *testing.T) {
	service := &Service{cfg: &config.Config{SecretKey: "x"}, now: time.Now}

	_, err := service.Unlock("qualquer")

	assert.ErrorIs(t, err, ErrAccessNotConfigured)
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t)

	t.Run("Token expirado", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		response, err := service.Unlock("viewer-123")
		require.NoError(t, err)
		service.now = time.Now

		_, err = service.ValidateToken(response.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Assinatura com outra chave", func(t *testing.T) {
		response, err := service.Unlock("viewer-123")
		require.NoError(t, err)

		other := newTestService(t)
		other.cfg.SecretKey = "outra-chave"

		_, err = other.ValidateToken(response.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Papel desconhecido", func(t *testing.T) {
		claims := domain.Claims{
			Role: "root",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo-de-teste"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
