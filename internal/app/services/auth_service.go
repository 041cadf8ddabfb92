package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/auth"
	"github.com/cabanes/backstage/internal/pkg/validation"
)

// StaffStore is the persistence surface the auth service needs.
type StaffStore interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
}

// AuthService handles staff registration and login
type AuthService struct {
	staff StaffStore
	jwt   *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(staff StaffStore, jwt *auth.JWTService) *AuthService {
	return &AuthService{staff: staff, jwt: jwt}
}

// Register creates a staff account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if len(req.Password) < validation.PasswordMinLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	staff := &models.Staff{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
	}
	return s.staff.Create(ctx, staff)
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password collapse into the same error so the endpoint does not leak
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	staff, err := s.staff.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(staff.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(staff.ID, staff.Email)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.TokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}
