package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/record"
)

type fakeCharacterStore struct {
	created     *models.Character
	oldName     string
	newName     string
	recastNetID string
	deletedName string
	deletedShow int64
	err         error
}

func (f *fakeCharacterStore) GetAll(ctx context.Context) ([]record.Record, error) {
	return nil, f.err
}

func (f *fakeCharacterStore) FilterBy(ctx context.Context, alias, column, value string) ([]record.Record, error) {
	return nil, f.err
}

func (f *fakeCharacterStore) Create(ctx context.Context, character *models.Character) error {
	f.created = character
	return f.err
}

func (f *fakeCharacterStore) Update(ctx context.Context, oldName, newName, netID string) error {
	f.oldName, f.newName, f.recastNetID = oldName, newName, netID
	return f.err
}

func (f *fakeCharacterStore) Delete(ctx context.Context, characterName string, showID int64) error {
	f.deletedName, f.deletedShow = characterName, showID
	return f.err
}

func TestCharacterEditMatchesOnOldName(t *testing.T) {
	store := &fakeCharacterStore{}
	svc := NewCharacterService(store)

	err := svc.Edit(context.Background(), &dto.EditCharacterRequest{
		OldCharacterName: "Macbeth",
		NewCharacterName: "Lady Macbeth",
		NetID:            "jdoe42",
	})
	require.NoError(t, err)
	assert.Equal(t, "Macbeth", store.oldName)
	assert.Equal(t, "Lady Macbeth", store.newName)
	assert.Equal(t, "jdoe42", store.recastNetID)
}

func TestCharacterDeleteScopedToShow(t *testing.T) {
	store := &fakeCharacterStore{}
	svc := NewCharacterService(store)

	err := svc.Delete(context.Background(), &dto.DeleteCharacterRequest{
		CharacterName: "Banquo",
		ShowID:        5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Banquo", store.deletedName)
	assert.Equal(t, int64(5), store.deletedShow)
}
