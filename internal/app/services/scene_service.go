package services

import (
	"context"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/record"
)

// SceneStore is the persistence surface for scenes.
type SceneStore interface {
	GetAll(ctx context.Context) ([]record.Record, error)
	FilterBy(ctx context.Context, column, value string) ([]record.Record, error)
	ForShow(ctx context.Context, showID int64) ([]record.Record, error)
	Create(ctx context.Context, scene *models.Scene) error
	Update(ctx context.Context, scene *models.Scene) error
	Delete(ctx context.Context, sceneID int64) error
}

// SceneDetailStore is the persistence surface for per-scene character details.
type SceneDetailStore interface {
	ForScene(ctx context.Context, sceneID int64) ([]record.Record, error)
	Create(ctx context.Context, detail *models.SceneDetail) error
	Update(ctx context.Context, detail *models.SceneDetail) error
	Delete(ctx context.Context, sceneID int64, characterName string) error
}

// SceneService handles scene and scene detail operations
type SceneService struct {
	scenes  SceneStore
	details SceneDetailStore
}

// NewSceneService creates a new scene service instance
func NewSceneService(scenes SceneStore, details SceneDetailStore) *SceneService {
	return &SceneService{scenes: scenes, details: details}
}

// GetAll retrieves all scenes
func (s *SceneService) GetAll(ctx context.Context) ([]record.Record, error) {
	return s.scenes.GetAll(ctx)
}

// FilterBy retrieves scenes whose column contains value
func (s *SceneService) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	return s.scenes.FilterBy(ctx, column, value)
}

// ForShow retrieves the scenes of one show in running order
func (s *SceneService) ForShow(ctx context.Context, showID int64) ([]record.Record, error) {
	if showID <= 0 {
		return nil, apperrors.ErrInvalidIdentifier
	}
	return s.scenes.ForShow(ctx, showID)
}

// Add creates a scene of a show
func (s *SceneService) Add(ctx context.Context, req *dto.AddSceneRequest) error {
	scene := &models.Scene{
		ShowID:     req.ShowID,
		SceneName:  req.SceneName,
		ActNumber:  req.ActNumber,
		Location:   req.Location,
		Song:       req.Song,
		ScriptPage: req.ScriptPage,
		CrewNotes:  req.CrewNotes,
	}
	return s.scenes.Create(ctx, scene)
}

// Edit updates the scene identified by sceneID. The show binding stays put;
// moving a scene between shows would orphan its character details.
func (s *SceneService) Edit(ctx context.Context, req *dto.EditSceneRequest) error {
	scene := &models.Scene{
		SceneID:    req.SceneID,
		SceneName:  req.SceneName,
		ActNumber:  req.ActNumber,
		Location:   req.Location,
		Song:       req.Song,
		ScriptPage: req.ScriptPage,
		CrewNotes:  req.CrewNotes,
	}
	return s.scenes.Update(ctx, scene)
}

// Delete removes a scene by ID
func (s *SceneService) Delete(ctx context.Context, sceneID int64) error {
	if sceneID <= 0 {
		return apperrors.ErrInvalidIdentifier
	}
	return s.scenes.Delete(ctx, sceneID)
}

// DetailsForScene retrieves the character details of one scene
func (s *SceneService) DetailsForScene(ctx context.Context, sceneID int64) ([]record.Record, error) {
	if sceneID <= 0 {
		return nil, apperrors.ErrInvalidIdentifier
	}
	return s.details.ForScene(ctx, sceneID)
}

func sceneDetailFromFields(sceneID int64, characterName string, showID int64, f *dto.SceneDetailFields) *models.SceneDetail {
	return &models.SceneDetail{
		SceneID:            sceneID,
		CharacterName:      characterName,
		ShowID:             showID,
		CostumeChange:      f.CostumeChange != 0,
		CostumeDescription: f.CostumeDescription,
		Location:           f.Location,
		ChangeLocation:     f.ChangeLocation,
		ChangeDuration:     f.ChangeDuration,
		Notes:              f.Notes,
	}
}

// AddDetail records a character's costume logistics in a scene
func (s *SceneService) AddDetail(ctx context.Context, req *dto.AddSceneDetailRequest) error {
	return s.details.Create(ctx,
		sceneDetailFromFields(req.SceneID, req.CharacterName, req.ShowID, &req.SceneDetailFields))
}

// EditDetail updates one character's detail in a scene
func (s *SceneService) EditDetail(ctx context.Context, req *dto.EditSceneDetailRequest) error {
	return s.details.Update(ctx,
		sceneDetailFromFields(req.SceneID, req.CharacterName, req.ShowID, &req.SceneDetailFields))
}

// DeleteDetail removes one character's detail from a scene
func (s *SceneService) DeleteDetail(ctx context.Context, req *dto.DeleteSceneDetailRequest) error {
	return s.details.Delete(ctx, req.SceneID, req.CharacterName)
}
