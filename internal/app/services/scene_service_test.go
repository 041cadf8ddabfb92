package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/record"
)

type fakeSceneStore struct {
	forShowID int64
	created   *models.Scene
	updated   *models.Scene
	deleted   int64
	err       error
}

func (f *fakeSceneStore) GetAll(ctx context.Context) ([]record.Record, error) { return nil, f.err }

func (f *fakeSceneStore) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	return nil, f.err
}

func (f *fakeSceneStore) ForShow(ctx context.Context, showID int64) ([]record.Record, error) {
	f.forShowID = showID
	return nil, f.err
}

func (f *fakeSceneStore) Create(ctx context.Context, scene *models.Scene) error {
	f.created = scene
	return f.err
}

func (f *fakeSceneStore) Update(ctx context.Context, scene *models.Scene) error {
	f.updated = scene
	return f.err
}

func (f *fakeSceneStore) Delete(ctx context.Context, sceneID int64) error {
	f.deleted = sceneID
	return f.err
}

type fakeSceneDetailStore struct {
	created     *models.SceneDetail
	updated     *models.SceneDetail
	deletedID   int64
	deletedName string
	err         error
}

func (f *fakeSceneDetailStore) ForScene(ctx context.Context, sceneID int64) ([]record.Record, error) {
	return nil, f.err
}

func (f *fakeSceneDetailStore) Create(ctx context.Context, detail *models.SceneDetail) error {
	f.created = detail
	return f.err
}

func (f *fakeSceneDetailStore) Update(ctx context.Context, detail *models.SceneDetail) error {
	f.updated = detail
	return f.err
}

func (f *fakeSceneDetailStore) Delete(ctx context.Context, sceneID int64, characterName string) error {
	f.deletedID, f.deletedName = sceneID, characterName
	return f.err
}

func TestSceneForShowRejectsBadID(t *testing.T) {
	store := &fakeSceneStore{}
	svc := NewSceneService(store, &fakeSceneDetailStore{})

	_, err := svc.ForShow(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidIdentifier)
	assert.Zero(t, store.forShowID)
}

func TestSceneEditDoesNotMoveBetweenShows(t *testing.T) {
	store := &fakeSceneStore{}
	svc := NewSceneService(store, &fakeSceneDetailStore{})

	err := svc.Edit(context.Background(), &dto.EditSceneRequest{
		SceneID:   4,
		SceneName: "Banquet",
		ActNumber: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), store.updated.SceneID)
	assert.Zero(t, store.updated.ShowID)
}

func TestSceneAddDetailConvertsCostumeFlag(t *testing.T) {
	details := &fakeSceneDetailStore{}
	svc := NewSceneService(&fakeSceneStore{}, details)

	err := svc.AddDetail(context.Background(), &dto.AddSceneDetailRequest{
		SceneID:       4,
		CharacterName: "Macbeth",
		ShowID:        2,
		SceneDetailFields: dto.SceneDetailFields{
			CostumeChange:  1,
			ChangeLocation: "stage left wing",
			ChangeDuration: "90s",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, details.created)
	assert.True(t, details.created.CostumeChange)
	assert.Equal(t, "stage left wing", details.created.ChangeLocation)
	assert.Equal(t, int64(2), details.created.ShowID)
}

func TestSceneDeleteDetailKeyedBySceneAndName(t *testing.T) {
	details := &fakeSceneDetailStore{}
	svc := NewSceneService(&fakeSceneStore{}, details)

	err := svc.DeleteDetail(context.Background(), &dto.DeleteSceneDetailRequest{
		SceneID:       4,
		CharacterName: "Macbeth",
		ShowID:        2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), details.deletedID)
	assert.Equal(t, "Macbeth", details.deletedName)
}
