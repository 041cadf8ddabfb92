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

// ShowRepository handles database operations for shows and their crew
// assignments
type ShowRepository struct {
	db *pgxpool.Pool
}

// NewShowRepository creates a new show repository
func NewShowRepository(db *pgxpool.Pool) *ShowRepository {
	return &ShowRepository{db: db}
}

const showProjection = `
	SELECT
		sh."showID",
		sh."showName",
		sh."yearSemester",
		sh."director",
		sh."genre",
		sh."playWright"
	FROM shows sh`

const showOrder = `ORDER BY sh."yearSemester" DESC, sh."showName"`

var showSearchColumns = queryfilter.NewWhitelist(map[string][]string{
	"sh": {"showID", "showName", "yearSemester"},
}).WithTextCast("sh", "showID")

// GetAll retrieves all shows
func (r *ShowRepository) GetAll(ctx context.Context) ([]record.Record, error) {
	rows, err := r.db.Query(ctx, showProjection+"\n"+showOrder)
	if err != nil {
		return nil, fmt.Errorf("error fetching shows: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// Search retrieves the name/semester/ID triple of shows matching a search
// column and value. The pick-a-show widgets use this to resolve a show ID.
func (r *ShowRepository) Search(ctx context.Context, column, value string) ([]record.Record, error) {
	fragment, ok := showSearchColumns.Resolve("sh", column)
	if !ok {
		return nil, apperrors.ErrColumnNotAllowed
	}

	base := `
	SELECT
		sh."showName",
		sh."yearSemester",
		sh."showID"
	FROM shows sh`

	sql, args, err := queryfilter.Build(
		queryfilter.Query{Base: base, OrderBy: showOrder},
		fragment, queryfilter.MatchPartial, value,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching shows: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// GetCrew retrieves the crew assigned to one show with their roles
func (r *ShowRepository) GetCrew(ctx context.Context, showID int64) ([]record.Record, error) {
	query := `
		SELECT
			sh."showName",
			sh."yearSemester",
			s."firstName",
			s."lastName",
			cs."roles",
			cs."crewID"
		FROM crew_in_show cs
		JOIN shows sh ON cs."showID" = sh."showID"
		JOIN student s ON s."netID" = cs."crewID"
		WHERE sh."showID" = $1
		ORDER BY s."lastName", s."firstName"`

	rows, err := r.db.Query(ctx, query, showID)
	if err != nil {
		return nil, fmt.Errorf("error fetching show crew: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// Create inserts a new show and fills in its generated ID
func (r *ShowRepository) Create(ctx context.Context, show *models.Show) error {
	query := `
		INSERT INTO shows ("showName", "yearSemester", "director", "genre", "playWright")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING "showID"`

	err := r.db.QueryRow(ctx, query,
		show.ShowName, show.YearSemester, show.Director, show.Genre, show.PlayWright).
		Scan(&show.ShowID)
	if err != nil {
		return fmt.Errorf("error adding show: %w", err)
	}

	return nil
}

// Update rewrites all mutable fields of the show identified by showID
func (r *ShowRepository) Update(ctx context.Context, show *models.Show) error {
	query := `
		UPDATE shows
		SET "showName" = $1, "yearSemester" = $2, "director" = $3, "genre" = $4, "playWright" = $5
		WHERE "showID" = $6`

	tag, err := r.db.Exec(ctx, query,
		show.ShowName, show.YearSemester, show.Director, show.Genre, show.PlayWright,
		show.ShowID)
	if err != nil {
		return fmt.Errorf("error editing show: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrShowNotFound
	}

	return nil
}

// Delete removes a show by ID
func (r *ShowRepository) Delete(ctx context.Context, showID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shows WHERE "showID" = $1`, showID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrShowHasRelations
		}
		return fmt.Errorf("error deleting show: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrShowNotFound
	}

	return nil
}

// AssignCrew places a crew member on a show
func (r *ShowRepository) AssignCrew(ctx context.Context, assignment *models.CrewAssignment) error {
	query := `
		INSERT INTO crew_in_show ("crewID", "showID", "roles")
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, assignment.CrewID, assignment.ShowID, assignment.Roles)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrCrewAssignmentRefGone
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrCrewAssignmentExists
		}
		return fmt.Errorf("error assigning crew: %w", err)
	}

	return nil
}

// RemoveCrew takes a crew member off a show
func (r *ShowRepository) RemoveCrew(ctx context.Context, crewID string, showID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM crew_in_show WHERE "crewID" = $1 AND "showID" = $2`, crewID, showID)
	if err != nil {
		return fmt.Errorf("error removing crew assignment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrCrewAssignmentNotFound
	}

	return nil
}
