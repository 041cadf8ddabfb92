package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/auth"
)

type fakeStaffStore struct {
	created *models.Staff
	byEmail map[string]*models.Staff
	err     error
}

func (f *fakeStaffStore) Create(ctx context.Context, staff *models.Staff) error {
	f.created = staff
	staff.ID = 1
	return f.err
}

func (f *fakeStaffStore) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	if staff, ok := f.byEmail[email]; ok {
		return staff, nil
	}
	return nil, apperrors.ErrStaffNotFound
}

func testJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func TestRegisterHashesPasswordAndLowercasesEmail(t *testing.T) {
	store := &fakeStaffStore{}
	svc := NewAuthService(store, testJWTService(t))

	err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "  Stage.Manager@Example.EDU ",
		Password: "curtain-call-9",
	})
	require.NoError(t, err)
	require.NotNil(t, store.created)
	assert.Equal(t, "stage.manager@example.edu", store.created.Email)
	assert.NotEqual(t, "curtain-call-9", store.created.PasswordHash)
	assert.True(t, auth.CheckPassword(store.created.PasswordHash, "curtain-call-9"))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	store := &fakeStaffStore{}
	svc := NewAuthService(store, testJWTService(t))

	err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "sm@example.edu",
		Password: "short",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Nil(t, store.created)
}

func TestLoginIssuesToken(t *testing.T) {
	hash, err := auth.HashPassword("curtain-call-9")
	require.NoError(t, err)

	store := &fakeStaffStore{byEmail: map[string]*models.Staff{
		"sm@example.edu": {ID: 7, Email: "sm@example.edu", PasswordHash: hash},
	}}
	jwtSvc := testJWTService(t)
	svc := NewAuthService(store, jwtSvc)

	token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "sm@example.edu",
		Password: "curtain-call-9",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)
	assert.Equal(t, 3600, token.ExpiresIn)

	claims, err := jwtSvc.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.StaffID)
	assert.Equal(t, "sm@example.edu", claims.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	store := &fakeStaffStore{byEmail: map[string]*models.Staff{
		"sm@example.edu": {ID: 7, Email: "sm@example.edu", PasswordHash: hash},
	}}
	svc := NewAuthService(store, testJWTService(t))

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "sm@example.edu",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginHidesUnknownAccounts(t *testing.T) {
	store := &fakeStaffStore{byEmail: map[string]*models.Staff{}}
	svc := NewAuthService(store, testJWTService(t))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.edu",
		Password: "whatever-123",
	})
	// unknown email reads identically to a wrong password
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
