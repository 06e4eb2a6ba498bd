package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Marcelo-Uk/student-management/internal/app/models"
	"github.com/Marcelo-Uk/student-management/internal/pkg/apperrors"
	"github.com/Marcelo-Uk/student-management/internal/pkg/auth"
)

// AuthService authenticates identities by email and password and issues
// session tokens.
type AuthService struct {
	identities IdentityReader
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(identities IdentityReader, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		identities: identities,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and returns the identity with a fresh session
// token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Identity, string, error) {
	identity, err := s.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(identity.Password, password) {
		s.logger.Debug().Str("email", email).Msg("Password mismatch at login")
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(identity)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().
		Int64("userId", identity.ID).
		Str("role", string(identity.Role)).
		Msg("Login succeeded")
	return identity, token, nil
}
