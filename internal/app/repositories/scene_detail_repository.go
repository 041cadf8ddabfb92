package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/dberrors"
	"github.com/cabanes/backstage/internal/pkg/record"
)

// SceneDetailRepository handles database operations for per-scene character
// costume details
type SceneDetailRepository struct {
	db *pgxpool.Pool
}

// NewSceneDetailRepository creates a new scene detail repository
func NewSceneDetailRepository(db *pgxpool.Pool) *SceneDetailRepository {
	return &SceneDetailRepository{db: db}
}

const sceneDetailProjection = `
	SELECT
		sc."sceneName",
		cis."characterName",
		CASE WHEN cis."costumeChange" THEN 'Yes' ELSE 'No' END AS "costumeChange",
		cis."costumeDescription",
		cis."location",
		cis."changeLocation",
		cis."changeDuration",
		cis."notes",
		cis."sceneID",
		cis."showID"
	FROM character_in_scene cis
	JOIN scene sc ON cis."sceneID" = sc."sceneID"`

const sceneDetailOrder = `ORDER BY cis."sceneID", cis."characterName"`

// ForScene retrieves the character details of one scene
func (r *SceneDetailRepository) ForScene(ctx context.Context, sceneID int64) ([]record.Record, error) {
	query := sceneDetailProjection + `
	WHERE cis."sceneID" = $1
	` + sceneDetailOrder

	rows, err := r.db.Query(ctx, query, sceneID)
	if err != nil {
		return nil, fmt.Errorf("error fetching scene details: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// Create inserts a character detail row for a scene
func (r *SceneDetailRepository) Create(ctx context.Context, detail *models.SceneDetail) error {
	query := `
		INSERT INTO character_in_scene ("sceneID", "characterName", "showID",
			"costumeChange", "costumeDescription", "location", "changeLocation",
			"changeDuration", "notes")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		detail.SceneID, detail.CharacterName, detail.ShowID,
		detail.CostumeChange, detail.CostumeDescription, detail.Location,
		detail.ChangeLocation, detail.ChangeDuration, detail.Notes)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrSceneDetailRefMissing
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrSceneDetailAlreadyExists
		}
		return fmt.Errorf("error adding scene detail: %w", err)
	}

	return nil
}

// Update rewrites the costume fields of one character's detail in a scene
func (r *SceneDetailRepository) Update(ctx context.Context, detail *models.SceneDetail) error {
	query := `
		UPDATE character_in_scene
		SET "costumeChange" = $1, "costumeDescription" = $2, "location" = $3,
			"changeLocation" = $4, "changeDuration" = $5, "notes" = $6
		WHERE "sceneID" = $7 AND "characterName" = $8`

	tag, err := r.db.Exec(ctx, query,
		detail.CostumeChange, detail.CostumeDescription, detail.Location,
		detail.ChangeLocation, detail.ChangeDuration, detail.Notes,
		detail.SceneID, detail.CharacterName)
	if err != nil {
		return fmt.Errorf("error editing scene detail: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSceneDetailNotFound
	}

	return nil
}

// Delete removes one character's detail from a scene
func (r *SceneDetailRepository) Delete(ctx context.Context, sceneID int64, characterName string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM character_in_scene WHERE "sceneID" = $1 AND "characterName" = $2`,
		sceneID, characterName)
	if err != nil {
		return fmt.Errorf("error deleting scene detail: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSceneDetailNotFound
	}

	return nil
}
