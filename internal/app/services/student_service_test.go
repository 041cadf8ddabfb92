package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/record"
)

type fakeStudentStore struct {
	created    *models.Student
	updated    *models.Student
	updatedOld string
	deleted    string
	filterCol  string
	filterVal  string
	err        error
	records    []record.Record
}

func (f *fakeStudentStore) GetAll(ctx context.Context) ([]record.Record, error) {
	return f.records, f.err
}

func (f *fakeStudentStore) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	f.filterCol, f.filterVal = column, value
	return f.records, f.err
}

func (f *fakeStudentStore) GetShows(ctx context.Context, netID string) ([]record.Record, error) {
	return f.records, f.err
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	f.created = student
	return f.err
}

func (f *fakeStudentStore) Update(ctx context.Context, oldNetID string, student *models.Student) error {
	f.updatedOld, f.updated = oldNetID, student
	return f.err
}

func (f *fakeStudentStore) Delete(ctx context.Context, netID string) error {
	f.deleted = netID
	return f.err
}

func TestStudentAddMapsFormFields(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	err := svc.Add(context.Background(), &dto.AddStudentRequest{
		NetID:                  "jdoe42",
		FirstName:              "Jane",
		LastName:               "Doe",
		GradeLevel:             "Junior",
		Email:                  "jdoe42@example.edu",
		AllergiesSensitivities: "latex",
	})
	require.NoError(t, err)
	require.NotNil(t, store.created)
	assert.Equal(t, "jdoe42", store.created.NetID)
	assert.Equal(t, "latex", store.created.AllergiesSensitivities)
}

func TestStudentAddRejectsBadNetID(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	err := svc.Add(context.Background(), &dto.AddStudentRequest{
		NetID:      "42abc", // must start with a letter
		FirstName:  "Jane",
		LastName:   "Doe",
		GradeLevel: "Junior",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Nil(t, store.created)
}

func TestStudentAddRejectsBadEmail(t *testing.T) {
	svc := NewStudentService(&fakeStudentStore{})

	err := svc.Add(context.Background(), &dto.AddStudentRequest{
		NetID:      "jdoe42",
		FirstName:  "Jane",
		LastName:   "Doe",
		GradeLevel: "Junior",
		Email:      "not-an-email",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentEditReassignsNetID(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	err := svc.Edit(context.Background(), "jdoe42", &dto.EditStudentRequest{
		NewNetID:   "jsmith7",
		FirstName:  "Jane",
		LastName:   "Smith",
		GradeLevel: "Senior",
	})
	require.NoError(t, err)
	assert.Equal(t, "jdoe42", store.updatedOld)
	assert.Equal(t, "jsmith7", store.updated.NetID)
}

func TestStudentDeleteRequiresNetID(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	err := svc.Delete(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.deleted)
}

func TestStudentFilterByPassesThroughStoreError(t *testing.T) {
	store := &fakeStudentStore{err: apperrors.ErrColumnNotAllowed}
	svc := NewStudentService(store)

	_, err := svc.FilterBy(context.Background(), "password", "x")
	assert.True(t, errors.Is(err, apperrors.ErrColumnNotAllowed))
	assert.Equal(t, "password", store.filterCol)
}
