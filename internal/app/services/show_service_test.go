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

type fakeShowStore struct {
	crewShowID    int64
	created       *models.Show
	updated       *models.Show
	deleted       int64
	assigned      *models.CrewAssignment
	removedCrewID string
	removedShowID int64
	err           error
}

func (f *fakeShowStore) GetAll(ctx context.Context) ([]record.Record, error) { return nil, f.err }

func (f *fakeShowStore) Search(ctx context.Context, column, value string) ([]record.Record, error) {
	return nil, f.err
}

func (f *fakeShowStore) GetCrew(ctx context.Context, showID int64) ([]record.Record, error) {
	f.crewShowID = showID
	return nil, f.err
}

func (f *fakeShowStore) Create(ctx context.Context, show *models.Show) error {
	f.created = show
	return f.err
}

func (f *fakeShowStore) Update(ctx context.Context, show *models.Show) error {
	f.updated = show
	return f.err
}

func (f *fakeShowStore) Delete(ctx context.Context, showID int64) error {
	f.deleted = showID
	return f.err
}

func (f *fakeShowStore) AssignCrew(ctx context.Context, assignment *models.CrewAssignment) error {
	f.assigned = assignment
	return f.err
}

func (f *fakeShowStore) RemoveCrew(ctx context.Context, crewID string, showID int64) error {
	f.removedCrewID, f.removedShowID = crewID, showID
	return f.err
}

func TestShowGetCrewRejectsBadID(t *testing.T) {
	store := &fakeShowStore{}
	svc := NewShowService(store)

	_, err := svc.GetCrew(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidIdentifier)
	assert.Zero(t, store.crewShowID)
}

func TestShowDeleteRejectsBadID(t *testing.T) {
	store := &fakeShowStore{}
	svc := NewShowService(store)

	err := svc.Delete(context.Background(), -3)
	assert.ErrorIs(t, err, apperrors.ErrInvalidIdentifier)
	assert.Zero(t, store.deleted)
}

func TestShowAssignCrewMapsRequest(t *testing.T) {
	store := &fakeShowStore{}
	svc := NewShowService(store)

	err := svc.AssignCrew(context.Background(), &dto.AssignCrewRequest{
		CrewID: "jdoe42",
		ShowID: 3,
		Roles:  "lighting, sound",
	})
	require.NoError(t, err)
	require.NotNil(t, store.assigned)
	assert.Equal(t, "jdoe42", store.assigned.CrewID)
	assert.Equal(t, int64(3), store.assigned.ShowID)
	assert.Equal(t, "lighting, sound", store.assigned.Roles)
}

func TestShowRemoveCrewPassesBothKeys(t *testing.T) {
	store := &fakeShowStore{}
	svc := NewShowService(store)

	err := svc.RemoveCrew(context.Background(), &dto.RemoveCrewRequest{CrewID: "jdoe42", ShowID: 3})
	require.NoError(t, err)
	assert.Equal(t, "jdoe42", store.removedCrewID)
	assert.Equal(t, int64(3), store.removedShowID)
}
