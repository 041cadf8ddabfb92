package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/services"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/record"
)

type stubStudentStore struct {
	records []record.Record
	created *models.Student
	err     error
}

func (s *stubStudentStore) GetAll(ctx context.Context) ([]record.Record, error) {
	return s.records, s.err
}

func (s *stubStudentStore) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	return s.records, s.err
}

func (s *stubStudentStore) GetShows(ctx context.Context, netID string) ([]record.Record, error) {
	return s.records, s.err
}

func (s *stubStudentStore) Create(ctx context.Context, student *models.Student) error {
	s.created = student
	return s.err
}

func (s *stubStudentStore) Update(ctx context.Context, oldNetID string, student *models.Student) error {
	return s.err
}

func (s *stubStudentStore) Delete(ctx context.Context, netID string) error {
	return s.err
}

func studentTestRouter(store *stubStudentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewStudentController(services.NewStudentService(store))

	router := gin.New()
	router.GET("/student/getAll", controller.GetAll)
	router.GET("/student/filterBy", controller.FilterBy)
	router.POST("/student/add", controller.Add)
	router.POST("/student/:netID/edit", controller.Edit)
	router.POST("/student/delete", controller.Delete)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStudentGetAllPreservesColumnOrder(t *testing.T) {
	store := &stubStudentStore{records: []record.Record{
		{
			{Name: "netID", Value: "jdoe42"},
			{Name: "firstName", Value: "Jane"},
			{Name: "lastName", Value: "Doe"},
		},
	}}
	router := studentTestRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/student/getAll", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`[{"netID":"jdoe42","firstName":"Jane","lastName":"Doe"}]`,
		strings.TrimSpace(w.Body.String()))
}

func TestStudentFilterByRejectsUnknownColumn(t *testing.T) {
	store := &stubStudentStore{err: apperrors.ErrColumnNotAllowed}
	router := studentTestRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/student/filterBy?column=password&value=x", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "column is not filterable")
}

func TestStudentAddReturnsSuccessMessage(t *testing.T) {
	store := &stubStudentStore{}
	router := studentTestRouter(store)

	w := postForm(router, "/student/add", url.Values{
		"netID":      {"jdoe42"},
		"firstName":  {"Jane"},
		"lastName":   {"Doe"},
		"gradeLevel": {"Junior"},
		"allergies":  {"latex"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"status":"success","message":"Student added successfully!"}`,
		w.Body.String())
	require.NotNil(t, store.created)
	assert.Equal(t, "latex", store.created.AllergiesSensitivities)
}

func TestStudentAddRejectsMissingRequiredField(t *testing.T) {
	store := &stubStudentStore{}
	router := studentTestRouter(store)

	w := postForm(router, "/student/add", url.Values{
		"netID":     {"jdoe42"},
		"firstName": {"Jane"},
		// lastName and gradeLevel omitted
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, store.created)
}

func TestStudentEditTakesOldNetIDFromPath(t *testing.T) {
	store := &stubStudentStore{err: apperrors.ErrStudentNotFound}
	router := studentTestRouter(store)

	w := postForm(router, "/student/jdoe42/edit", url.Values{
		"newNetID":   {"jsmith7"},
		"firstName":  {"Jane"},
		"lastName":   {"Smith"},
		"gradeLevel": {"Senior"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "student not found")
}

func TestStudentDeleteBlockedByRelations(t *testing.T) {
	store := &stubStudentStore{err: apperrors.ErrStudentHasRelations}
	router := studentTestRouter(store)

	w := postForm(router, "/student/delete", url.Values{"netID": {"jdoe42"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be deleted")
}
