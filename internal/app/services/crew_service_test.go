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

type fakeCrewStore struct {
	created *models.Crew
	updated *models.Crew
	deleted string
	err     error
}

func (f *fakeCrewStore) GetAll(ctx context.Context) ([]record.Record, error) { return nil, f.err }

func (f *fakeCrewStore) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	return nil, f.err
}

func (f *fakeCrewStore) Create(ctx context.Context, crew *models.Crew) error {
	f.created = crew
	return f.err
}

func (f *fakeCrewStore) Update(ctx context.Context, crew *models.Crew) error {
	f.updated = crew
	return f.err
}

func (f *fakeCrewStore) Delete(ctx context.Context, netID string) error {
	f.deleted = netID
	return f.err
}

func TestCrewAddConvertsTrainingFlags(t *testing.T) {
	store := &fakeCrewStore{}
	svc := NewCrewService(store)

	err := svc.Add(context.Background(), &dto.AddCrewRequest{
		NetID: "jdoe42",
		CrewFields: dto.CrewFields{
			WigTrained:    1,
			MakeupTrained: 0,
			MusicReading:  1,
			Specialty:     "set construction",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, store.created)
	assert.True(t, store.created.WigTrained)
	assert.False(t, store.created.MakeupTrained)
	assert.True(t, store.created.MusicReading)
	assert.Equal(t, "set construction", store.created.Specialty)
}

func TestCrewEditKeepsNetID(t *testing.T) {
	store := &fakeCrewStore{}
	svc := NewCrewService(store)

	err := svc.Edit(context.Background(), &dto.EditCrewRequest{
		NetID:      "jdoe42",
		CrewFields: dto.CrewFields{Lighting: "board op"},
	})
	require.NoError(t, err)
	assert.Equal(t, "jdoe42", store.updated.NetID)
	assert.Equal(t, "board op", store.updated.Lighting)
}
