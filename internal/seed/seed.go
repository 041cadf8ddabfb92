package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/repositories"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/auth"
)

const defaultAdminEmail = "admin@backstage.local"

// CreateDefaultData seeds the bootstrap staff account so the first deploy has
// a way in. The password comes from ADMIN_PASSWORD; without it nothing is
// seeded, which is the right call for anything public-facing.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	staffRepo := repositories.NewStaffRepository(dbPool)

	count, err := staffRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Msg("Staff accounts present, skipping seed")
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		lgr.Warn().Msg("No staff accounts and ADMIN_PASSWORD not set; skipping admin seed")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Staff{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
	}
	if err := staffRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Seeded bootstrap admin account")
	return nil
}
