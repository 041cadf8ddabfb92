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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentProjection = `
	SELECT
		s."netID",
		s."firstName",
		s."lastName",
		s."gradeLevel",
		s."pronouns",
		s."specialNotes",
		s."email",
		s."allergies_sensitivities"
	FROM student s`

const studentOrder = `ORDER BY s."lastName", s."firstName"`

var studentFilterColumns = queryfilter.NewWhitelist(map[string][]string{
	"s": {
		"netID", "firstName", "lastName", "gradeLevel",
		"pronouns", "specialNotes", "email", "allergies_sensitivities",
	},
})

// GetAll retrieves all students ordered by name
func (r *StudentRepository) GetAll(ctx context.Context) ([]record.Record, error) {
	rows, err := r.db.Query(ctx, studentProjection+"\n"+studentOrder)
	if err != nil {
		return nil, fmt.Errorf("error fetching students: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// FilterBy retrieves students whose column contains value. The column name
// must be whitelisted; unknown columns are rejected before any SQL is built.
func (r *StudentRepository) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	fragment, ok := studentFilterColumns.Resolve("s", column)
	if !ok {
		return nil, apperrors.ErrColumnNotAllowed
	}

	sql, args, err := queryfilter.Build(
		queryfilter.Query{Base: studentProjection, OrderBy: studentOrder},
		fragment, queryfilter.MatchPartial, value,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error filtering students: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// GetShows retrieves all shows a student appeared in, with the characters
// they played aggregated into one column.
func (r *StudentRepository) GetShows(ctx context.Context, netID string) ([]record.Record, error) {
	query := `
		SELECT DISTINCT
			sh."showID",
			sh."showName",
			sh."yearSemester",
			sh."director",
			sh."genre",
			sh."playWright",
			string_agg(c."characterName", ', ') AS "characters"
		FROM shows sh
		JOIN characters c ON sh."showID" = c."showID"
		WHERE c."netID" = $1
		GROUP BY sh."showID", sh."showName", sh."yearSemester", sh."director", sh."genre", sh."playWright"
		ORDER BY sh."yearSemester" DESC, sh."showName"`

	rows, err := r.db.Query(ctx, query, netID)
	if err != nil {
		return nil, fmt.Errorf("error fetching student shows: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO student ("netID", "firstName", "lastName", "gradeLevel", "pronouns",
			"specialNotes", "email", "allergies_sensitivities")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		student.NetID, student.FirstName, student.LastName, student.GradeLevel,
		student.Pronouns, student.SpecialNotes, student.Email, student.AllergiesSensitivities)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error adding student: %w", err)
	}

	return nil
}

// Update rewrites all mutable fields of the student identified by oldNetID.
// The netID itself may be reassigned; dependent rows block that because the
// schema declares no cascade.
func (r *StudentRepository) Update(ctx context.Context, oldNetID string, student *models.Student) error {
	query := `
		UPDATE student
		SET "netID" = $1, "firstName" = $2, "lastName" = $3, "gradeLevel" = $4,
			"pronouns" = $5, "specialNotes" = $6, "email" = $7, "allergies_sensitivities" = $8
		WHERE "netID" = $9`

	tag, err := r.db.Exec(ctx, query,
		student.NetID, student.FirstName, student.LastName, student.GradeLevel,
		student.Pronouns, student.SpecialNotes, student.Email, student.AllergiesSensitivities,
		oldNetID)
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrStudentAlreadyExists
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrStudentHasRelations
		}
		return fmt.Errorf("error editing student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by netID
func (r *StudentRepository) Delete(ctx context.Context, netID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM student WHERE "netID" = $1`, netID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentHasRelations
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
