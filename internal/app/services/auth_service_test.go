package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		SessionExp:  time.Hour,
		TokenIssuer: "student-management-test",
	})
}

func TestLoginSucceeds(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	accounts := newTestAccountService(store)
	created, err := accounts.CreateIdentity(context.Background(), newIdentity(models.RoleStaff), ProfileOptions{})
	require.NoError(t, err)

	jwtService := newTestJWTService()
	svc := NewAuthService(store, jwtService, zerolog.Nop())

	identity, token, err := svc.Login(context.Background(), "jdoe@school.edu", "plaintext-pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, identity.ID)
	assert.Equal(t, models.RoleStaff, identity.Role)

	claims, err := jwtService.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, string(models.RoleStaff), claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeAccountStore()
	store.seedDefaults()
	accounts := newTestAccountService(store)
	_, err := accounts.CreateIdentity(context.Background(), newIdentity(models.RoleAdmin), ProfileOptions{})
	require.NoError(t, err)

	svc := NewAuthService(store, newTestJWTService(), zerolog.Nop())
	_, _, err = svc.Login(context.Background(), "jdoe@school.edu", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewAuthService(store, newTestJWTService(), zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "ghost@school.edu", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
