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

// SceneRepository handles database operations for scenes
type SceneRepository struct {
	db *pgxpool.Pool
}

// NewSceneRepository creates a new scene repository
func NewSceneRepository(db *pgxpool.Pool) *SceneRepository {
	return &SceneRepository{db: db}
}

const sceneProjection = `
	SELECT
		sc."sceneID",
		sh."showName",
		sh."yearSemester",
		sc."sceneName",
		sc."actNumber",
		sc."location",
		sc."song",
		sc."scriptPage",
		sc."crewNotes",
		sc."showID"
	FROM scene sc
	JOIN shows sh ON sc."showID" = sh."showID"`

const sceneOrder = `ORDER BY sc."showID", sc."actNumber", sc."sceneName"`

var sceneFilterColumns = queryfilter.NewWhitelist(map[string][]string{
	"sc": {"sceneName", "location", "song", "actNumber"},
}).WithTextCast("sc", "actNumber")

// GetAll retrieves all scenes with their show information
func (r *SceneRepository) GetAll(ctx context.Context) ([]record.Record, error) {
	rows, err := r.db.Query(ctx, sceneProjection+"\n"+sceneOrder)
	if err != nil {
		return nil, fmt.Errorf("error fetching scenes: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// FilterBy retrieves scenes whose column contains value
func (r *SceneRepository) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	fragment, ok := sceneFilterColumns.Resolve("sc", column)
	if !ok {
		return nil, apperrors.ErrColumnNotAllowed
	}

	sql, args, err := queryfilter.Build(
		queryfilter.Query{Base: sceneProjection, OrderBy: sceneOrder},
		fragment, queryfilter.MatchPartial, value,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error filtering scenes: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// ForShow retrieves the scenes of one show in running order
func (r *SceneRepository) ForShow(ctx context.Context, showID int64) ([]record.Record, error) {
	sql, args, err := queryfilter.Build(
		queryfilter.Query{Base: sceneProjection, OrderBy: sceneOrder},
		`sc."showID"`, queryfilter.MatchExact, fmt.Sprintf("%d", showID),
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching show scenes: %w", err)
	}
	defer rows.Close()

	return record.FromRows(rows)
}

// Create inserts a new scene and fills in its generated ID
func (r *SceneRepository) Create(ctx context.Context, scene *models.Scene) error {
	query := `
		INSERT INTO scene ("showID", "sceneName", "actNumber", "location", "song",
			"scriptPage", "crewNotes")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING "sceneID"`

	err := r.db.QueryRow(ctx, query,
		scene.ShowID, scene.SceneName, scene.ActNumber, scene.Location,
		scene.Song, scene.ScriptPage, scene.CrewNotes).
		Scan(&scene.SceneID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSceneShowGone
		}
		return fmt.Errorf("error adding scene: %w", err)
	}

	return nil
}

// Update rewrites the mutable fields of the scene identified by sceneID. The
// show binding stays put; moving a scene between shows would orphan its
// character details.
func (r *SceneRepository) Update(ctx context.Context, scene *models.Scene) error {
	query := `
		UPDATE scene
		SET "sceneName" = $1, "actNumber" = $2, "location" = $3,
			"song" = $4, "scriptPage" = $5, "crewNotes" = $6
		WHERE "sceneID" = $7`

	tag, err := r.db.Exec(ctx, query,
		scene.SceneName, scene.ActNumber, scene.Location,
		scene.Song, scene.ScriptPage, scene.CrewNotes,
		scene.SceneID)
	if err != nil {
		return fmt.Errorf("error editing scene: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSceneNotFound
	}

	return nil
}

// Delete removes a scene by ID
func (r *SceneRepository) Delete(ctx context.Context, sceneID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM scene WHERE "sceneID" = $1`, sceneID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSceneHasRelations
		}
		return fmt.Errorf("error deleting scene: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSceneNotFound
	}

	return nil
}
