package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/queryfilter"
)

func handleOnTestContext(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/student/filterBy", nil)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"column not filterable", apperrors.ErrColumnNotAllowed, http.StatusBadRequest},
		{"non numeric exact match", queryfilter.ErrNotNumeric, http.StatusBadRequest},
		{"validation failure", apperrors.NewValidationError("invalid netID format: 42abc"), http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"student missing", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"scene missing", apperrors.ErrSceneNotFound, http.StatusNotFound},
		{"duplicate crew profile", apperrors.ErrCrewAlreadyExists, http.StatusConflict},
		{"duplicate staff email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"student still referenced", apperrors.ErrStudentHasRelations, http.StatusBadRequest},
		{"actor without student row", apperrors.ErrActorStudentGone, http.StatusBadRequest},
		{"casting refs missing", apperrors.ErrCharacterRefMissing, http.StatusBadRequest},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := handleOnTestContext(t, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestHandleAPIErrorBodyShape(t *testing.T) {
	w := handleOnTestContext(t, apperrors.ErrStudentNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t,
		`{"status":"error","message":"student not found"}`,
		w.Body.String())
}

func TestHandleAPIErrorKeepsWrappedSentinel(t *testing.T) {
	// fmt.Errorf-style wrapping must still classify through errors.Is
	wrapped := errors.Join(errors.New("delete crew"), apperrors.ErrCrewHasRelations)
	w := handleOnTestContext(t, wrapped)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
