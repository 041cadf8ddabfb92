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

// ActorRepository handles database operations for actor profiles
type ActorRepository struct {
	db *pgxpool.Pool
}

// NewActorRepository creates a new actor repository
func NewActorRepository(db *pgxpool.Pool) *ActorRepository {
	return &ActorRepository{db: db}
}

// actorProjection joins actor rows to their student for the full costume
// sheet. The projection order is part of the API.
const actorProjection = `
	SELECT
		s."firstName",
		s."lastName",
		a."netID",
		a."yearsActingExperience",
		a."skinTone",
		a."piercings",
		a."hairColor",
		a."previousInjuries",
		a."specialNotes",
		a."height",
		a."ringSize",
		a."shoeSize",
		a."headCirc",
		a."neckBase",
		a."chest",
		a."waist",
		a."highHip",
		a."lowHip",
		a."armseyeToArmseyeFront",
		a."neckToWaistFront",
		a."armseyeToArmseyeBack",
		a."neckToWaistBack",
		a."centerBackToWrist",
		a."outsleeveToWrist",
		a."outseamBelowKnee",
		a."outseamToAnkle",
		a."outseamToFloor",
		a."otherNotes"
	FROM actor a
	JOIN student s ON a."netID" = s."netID"`

const actorOrder = `ORDER BY s."lastName", s."firstName"`

// actorByShowProjection is the same sheet restricted to actors who played a
// character, deduplicated because an actor can hold several roles per show.
const actorByShowProjection = `
	SELECT DISTINCT
		s."firstName",
		s."lastName",
		a."netID",
		a."yearsActingExperience",
		a."skinTone",
		a."piercings",
		a."hairColor",
		a."previousInjuries",
		a."specialNotes",
		a."height",
		a."ringSize",
		a."shoeSize",
		a."headCirc",
		a."neckBase",
		a."chest",
		a."waist",
		a."highHip",
		a."lowHip",
		a."armseyeToArmseyeFront",
		a."neckToWaistFront",
		a."armseyeToArmseyeBack",
		a."neckToWaistBack",
		a."centerBackToWrist",
		a."outsleeveToWrist",
		a."outseamBelowKnee",
		a."outseamToAnkle",
		a."outseamToFloor",
		a."otherNotes"
	FROM actor a
	JOIN student s ON a."netID" = s."netID"
	JOIN characters c ON a."netID" = c."netID"`

var actorFilterColumns = queryfilter.NewWhitelist(map[string][]string{
	"a": {"netID"},
	"s": {"firstName", "lastName"},
	"c": {"showID"},
}).WithTextCast("c", "showID")

// GetAll retrieves all actors with their student information
func (r *ActorRepository) GetAll(ctx context.Context) ([]record.Record, error) {
	rows, err := r.db.Query(ctx, actorProjection+"\n"+actorOrder)
	if err != nil {
		return nil, fmt.Errorf("error fetching actors: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// FilterBy retrieves actors filtered by netID, a student name field, or the
// shows they played in. Filtering by "shows" matches against the show IDs of
// the characters the actor has played.
func (r *ActorRepository) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	alias := "a"
	base := actorProjection
	switch column {
	case "firstName", "lastName":
		alias = "s"
	case "shows":
		alias, column = "c", "showID"
		base = actorByShowProjection
	}

	fragment, ok := actorFilterColumns.Resolve(alias, column)
	if !ok {
		return nil, apperrors.ErrColumnNotAllowed
	}

	sql, args, err := queryfilter.Build(
		queryfilter.Query{Base: base, OrderBy: actorOrder},
		fragment, queryfilter.MatchPartial, value,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error filtering actors: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// GetByNetID retrieves one actor profile with its student fields
func (r *ActorRepository) GetByNetID(ctx context.Context, netID string) (record.Record, error) {
	rows, err := r.db.Query(ctx, actorProjection+"\n\tWHERE a.\"netID\" = $1", netID)
	if err != nil {
		return nil, fmt.Errorf("error fetching actor: %w", err)
	}
	defer rows.Close()

	records, err := record.FromRows(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.ErrActorNotFound
	}
	return records[0], nil
}

// Create inserts a new actor profile for an existing student
func (r *ActorRepository) Create(ctx context.Context, actor *models.Actor) error {
	query := `
		INSERT INTO actor (
			"netID", "yearsActingExperience", "skinTone", "piercings", "hairColor",
			"previousInjuries", "specialNotes", "height", "ringSize", "shoeSize",
			"headCirc", "neckBase", "chest", "waist", "highHip", "lowHip",
			"armseyeToArmseyeFront", "neckToWaistFront", "armseyeToArmseyeBack",
			"neckToWaistBack", "centerBackToWrist", "outsleeveToWrist",
			"outseamBelowKnee", "outseamToAnkle", "outseamToFloor", "otherNotes"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`

	_, err := r.db.Exec(ctx, query,
		actor.NetID, actor.YearsActingExperience, actor.SkinTone, actor.Piercings,
		actor.HairColor, actor.PreviousInjuries, actor.SpecialNotes, actor.Height,
		actor.RingSize, actor.ShoeSize, actor.HeadCirc, actor.NeckBase, actor.Chest,
		actor.Waist, actor.HighHip, actor.LowHip, actor.ArmseyeToArmseyeFront,
		actor.NeckToWaistFront, actor.ArmseyeToArmseyeBack, actor.NeckToWaistBack,
		actor.CenterBackToWrist, actor.OutsleeveToWrist, actor.OutseamBelowKnee,
		actor.OutseamToAnkle, actor.OutseamToFloor, actor.OtherNotes)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrActorStudentGone
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrActorAlreadyExists
		}
		return fmt.Errorf("error adding actor: %w", err)
	}

	return nil
}

// Update rewrites all profile fields of the actor identified by netID. The
// netID is never updated here; it ties the profile to its student.
func (r *ActorRepository) Update(ctx context.Context, actor *models.Actor) error {
	query := `
		UPDATE actor
		SET "yearsActingExperience" = $1, "skinTone" = $2, "piercings" = $3,
			"hairColor" = $4, "previousInjuries" = $5, "specialNotes" = $6,
			"height" = $7, "ringSize" = $8, "shoeSize" = $9, "headCirc" = $10,
			"neckBase" = $11, "chest" = $12, "waist" = $13, "highHip" = $14,
			"lowHip" = $15, "armseyeToArmseyeFront" = $16, "neckToWaistFront" = $17,
			"armseyeToArmseyeBack" = $18, "neckToWaistBack" = $19,
			"centerBackToWrist" = $20, "outsleeveToWrist" = $21,
			"outseamBelowKnee" = $22, "outseamToAnkle" = $23, "outseamToFloor" = $24,
			"otherNotes" = $25
		WHERE "netID" = $26`

	tag, err := r.db.Exec(ctx, query,
		actor.YearsActingExperience, actor.SkinTone, actor.Piercings, actor.HairColor,
		actor.PreviousInjuries, actor.SpecialNotes, actor.Height, actor.RingSize,
		actor.ShoeSize, actor.HeadCirc, actor.NeckBase, actor.Chest, actor.Waist,
		actor.HighHip, actor.LowHip, actor.ArmseyeToArmseyeFront, actor.NeckToWaistFront,
		actor.ArmseyeToArmseyeBack, actor.NeckToWaistBack, actor.CenterBackToWrist,
		actor.OutsleeveToWrist, actor.OutseamBelowKnee, actor.OutseamToAnkle,
		actor.OutseamToFloor, actor.OtherNotes,
		actor.NetID)
	if err != nil {
		return fmt.Errorf("error editing actor: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrActorNotFound
	}

	return nil
}

// Delete removes an actor profile by netID
func (r *ActorRepository) Delete(ctx context.Context, netID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM actor WHERE "netID" = $1`, netID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrActorHasRelations
		}
		return fmt.Errorf("error deleting actor: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrActorNotFound
	}

	return nil
}
