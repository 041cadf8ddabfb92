package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/dberrors"
)

// StaffRepository handles database operations for staff accounts
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create inserts a new staff account and fills in its generated ID
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	query := `
		INSERT INTO staff (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, staff.Email, staff.PasswordHash).
		Scan(&staff.ID, &staff.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating staff account: %w", err)
	}

	return nil
}

// GetByEmail retrieves a staff account by email
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM staff
		WHERE email = $1`

	var staff models.Staff
	err := r.db.QueryRow(ctx, query, email).
		Scan(&staff.ID, &staff.Email, &staff.PasswordHash, &staff.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error fetching staff account: %w", err)
	}

	return &staff, nil
}

// Count returns the number of staff accounts. Used at startup to decide
// whether the bootstrap admin account must be seeded.
func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting staff accounts: %w", err)
	}
	return count, nil
}
