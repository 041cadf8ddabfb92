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

// CharacterRepository handles database operations for characters, the link
// between an actor and a show
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

const characterProjection = `
	SELECT
		s."firstName",
		s."lastName",
		c."characterName",
		c."netID",
		c."showID",
		sh."showName",
		sh."yearSemester" AS "showSemester"
	FROM characters c
	JOIN student s ON c."netID" = s."netID"
	JOIN shows sh ON c."showID" = sh."showID"`

const characterOrder = `ORDER BY sh."yearSemester" DESC, sh."showName", c."characterName"`

// characterFilterColumns is keyed by the alias the caller names explicitly.
// The filter endpoint takes the alias alongside the column, so the same
// column name can target either the characters table or the shows table.
var characterFilterColumns = queryfilter.NewWhitelist(map[string][]string{
	"c":  {"characterName", "netID", "showID"},
	"s":  {"firstName", "lastName"},
	"sh": {"showName", "yearSemester", "showID"},
}).WithTextCast("c", "showID").WithTextCast("sh", "showID")

// GetAll retrieves all characters with their actor and show information
func (r *CharacterRepository) GetAll(ctx context.Context) ([]record.Record, error) {
	rows, err := r.db.Query(ctx, characterProjection+"\n"+characterOrder)
	if err != nil {
		return nil, fmt.Errorf("error fetching characters: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// FilterBy retrieves characters matching a column under the given table
// alias. Both the alias and the column must be whitelisted.
func (r *CharacterRepository) FilterBy(ctx context.Context, alias, column, value string) ([]record.Record, error) {
	fragment, ok := characterFilterColumns.Resolve(alias, column)
	if !ok {
		return nil, apperrors.ErrColumnNotAllowed
	}

	sql, args, err := queryfilter.Build(
		queryfilter.Query{Base: characterProjection, OrderBy: characterOrder},
		fragment, queryfilter.MatchPartial, value,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error filtering characters: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// Create inserts a new character for an existing actor and show
func (r *CharacterRepository) Create(ctx context.Context, character *models.Character) error {
	query := `
		INSERT INTO characters ("characterName", "netID", "showID")
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query,
		character.CharacterName, character.NetID, character.ShowID)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrCharacterRefMissing
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrCharacterAlreadyExists
		}
		return fmt.Errorf("error adding character: %w", err)
	}

	return nil
}

// Update renames a character and recasts its actor. The character is matched
// by its old name alone, so every show's character of that name is updated
// together. The show binding never changes here.
func (r *CharacterRepository) Update(ctx context.Context, oldName, newName, netID string) error {
	query := `
		UPDATE characters
		SET "characterName" = $1, "netID" = $2
		WHERE "characterName" = $3`

	tag, err := r.db.Exec(ctx, query, newName, netID, oldName)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrCharacterRefMissing
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrCharacterAlreadyExists
		}
		return fmt.Errorf("error editing character: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrCharacterNotFound
	}

	return nil
}

// Delete removes one character by name within a show
func (r *CharacterRepository) Delete(ctx context.Context, characterName string, showID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM characters WHERE "characterName" = $1 AND "showID" = $2`,
		characterName, showID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCharacterHasRelations
		}
		return fmt.Errorf("error deleting character: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrCharacterNotFound
	}

	return nil
}
