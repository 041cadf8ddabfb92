package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/dberrors"
	"github.com/cabanes/backstage/internal/pkg/queryfilter"
	"github.com/cabanes/backstage/internal/pkg/record"
)

// CrewRepository handles database operations for crew profiles
type CrewRepository struct {
	db *pgxpool.Pool
}

// NewCrewRepository creates a new crew repository
func NewCrewRepository(db *pgxpool.Pool) *CrewRepository {
	return &CrewRepository{db: db}
}

// crewProjection renders the trained flags as Yes/No the way the admin
// pages expect them.
const crewProjection = `
	SELECT
		c."netID",
		s."firstName",
		s."lastName",
		CASE WHEN c."wigTrained" THEN 'Yes' ELSE 'No' END AS "wigTrained",
		CASE WHEN c."makeupTrained" THEN 'Yes' ELSE 'No' END AS "makeupTrained",
		CASE WHEN c."musicReading" THEN 'Yes' ELSE 'No' END AS "musicReading",
		c."lighting",
		c."sound",
		c."specialty",
		c."notes"
	FROM crew c
	JOIN student s ON c."netID" = s."netID"`

const crewOrder = `ORDER BY s."lastName", s."firstName"`

var crewFilterColumns = queryfilter.NewWhitelist(map[string][]string{
	"c": {"netID", "specialty"},
	"s": {"firstName", "lastName"},
})

// GetAll retrieves all crew members with their student information
func (r *CrewRepository) GetAll(ctx context.Context) ([]record.Record, error) {
	rows, err := r.db.Query(ctx, crewProjection+"\n"+crewOrder)
	if err != nil {
		return nil, fmt.Errorf("error fetching crew: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// FilterBy retrieves crew members whose column contains value
func (r *CrewRepository) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	alias := "c"
	if column == "firstName" || column == "lastName" {
		alias = "s"
	}

	fragment, ok := crewFilterColumns.Resolve(alias, column)
	if !ok {
		return nil, apperrors.ErrColumnNotAllowed
	}

	sql, args, err := queryfilter.Build(
		queryfilter.Query{Base: crewProjection, OrderBy: crewOrder},
		fragment, queryfilter.MatchPartial, value,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error filtering crew: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// Create inserts a new crew profile for an existing student
func (r *CrewRepository) Create(ctx context.Context, crew *models.Crew) error {
	query := `
		INSERT INTO crew ("netID", "wigTrained", "makeupTrained", "musicReading",
			"lighting", "sound", "specialty", "notes")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		crew.NetID, crew.WigTrained, crew.MakeupTrained, crew.MusicReading,
		crew.Lighting, crew.Sound, crew.Specialty, crew.Notes)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrCrewStudentGone
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrCrewAlreadyExists
		}
		return fmt.Errorf("error adding crew member: %w", err)
	}

	return nil
}

// Update rewrites all profile fields of the crew member identified by netID
func (r *CrewRepository) Update(ctx context.Context, crew *models.Crew) error {
	query := `
		UPDATE crew
		SET "wigTrained" = $1, "makeupTrained" = $2, "musicReading" = $3,
			"lighting" = $4, "sound" = $5, "specialty" = $6, "notes" = $7
		WHERE "netID" = $8`

	tag, err := r.db.Exec(ctx, query,
		crew.WigTrained, crew.MakeupTrained, crew.MusicReading,
		crew.Lighting, crew.Sound, crew.Specialty, crew.Notes,
		crew.NetID)
	if err != nil {
		return fmt.Errorf("error editing crew member: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrCrewNotFound
	}

	return nil
}

// Delete removes a crew profile by netID
func (r *CrewRepository) Delete(ctx context.Context, netID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM crew WHERE "netID" = $1`, netID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCrewHasRelations
		}
		return fmt.Errorf("error deleting crew member: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrCrewNotFound
	}

	return nil
}
