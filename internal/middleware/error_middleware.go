package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/logger"
	"github.com/cabanes/backstage/internal/pkg/queryfilter"
)

// HandleAPIError maps service errors onto HTTP status codes and the wire
// status/message shape. The sentinel's message is the user-facing text; a
// wrapped CustomError overrides it.
func HandleAPIError(c *gin.Context, err error) {
	status := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("request failed")
	}

	c.JSON(status, dto.NewErrorResponse(err.Error()))
}

func classifyError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrColumnNotAllowed),
		errors.Is(err, queryfilter.ErrNotNumeric),
		errors.Is(err, apperrors.ErrInvalidIdentifier),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized

	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrActorNotFound),
		errors.Is(err, apperrors.ErrCrewNotFound),
		errors.Is(err, apperrors.ErrShowNotFound),
		errors.Is(err, apperrors.ErrCharacterNotFound),
		errors.Is(err, apperrors.ErrSceneNotFound),
		errors.Is(err, apperrors.ErrSceneDetailNotFound),
		errors.Is(err, apperrors.ErrCrewAssignmentNotFound),
		errors.Is(err, apperrors.ErrStaffNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, apperrors.ErrStudentAlreadyExists),
		errors.Is(err, apperrors.ErrActorAlreadyExists),
		errors.Is(err, apperrors.ErrCrewAlreadyExists),
		errors.Is(err, apperrors.ErrCharacterAlreadyExists),
		errors.Is(err, apperrors.ErrSceneDetailAlreadyExists),
		errors.Is(err, apperrors.ErrCrewAssignmentExists),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict

	// Integrity failures against referenced rows come back as 400 with the
	// sentinel's message so the admin pages can show what went wrong.
	case errors.Is(err, apperrors.ErrStudentHasRelations),
		errors.Is(err, apperrors.ErrActorHasRelations),
		errors.Is(err, apperrors.ErrCrewHasRelations),
		errors.Is(err, apperrors.ErrShowHasRelations),
		errors.Is(err, apperrors.ErrCharacterHasRelations),
		errors.Is(err, apperrors.ErrSceneHasRelations),
		errors.Is(err, apperrors.ErrHasDependentRows),
		errors.Is(err, apperrors.ErrActorStudentGone),
		errors.Is(err, apperrors.ErrCrewStudentGone),
		errors.Is(err, apperrors.ErrCharacterRefMissing),
		errors.Is(err, apperrors.ErrSceneShowGone),
		errors.Is(err, apperrors.ErrSceneDetailRefMissing),
		errors.Is(err, apperrors.ErrCrewAssignmentRefGone),
		errors.Is(err, apperrors.ErrReferenceMissing):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
