package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrHasDependentRows      = errors.New("record has dependent records and cannot be deleted")
	ErrReferenceMissing      = errors.New("referenced record does not exist")

	// Validation errors
	ErrValidationFailed  = errors.New("validation failed")
	ErrColumnNotAllowed  = errors.New("column is not filterable")
	ErrInvalidIdentifier = errors.New("identifier must be numeric")
	ErrBadRequest        = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student with this netID already exists")
	ErrStudentHasRelations  = errors.New("student has related actor, crew or character records and cannot be deleted")
)

// Actor errors
var (
	ErrActorNotFound      = errors.New("actor not found")
	ErrActorAlreadyExists = errors.New("actor profile already exists for this student")
	ErrActorStudentGone   = errors.New("cannot add actor: student with this netID does not exist")
	ErrActorHasRelations  = errors.New("actor still plays characters and cannot be deleted")
)

// Crew errors
var (
	ErrCrewNotFound      = errors.New("crew member not found")
	ErrCrewAlreadyExists = errors.New("crew profile already exists for this student")
	ErrCrewStudentGone   = errors.New("cannot add crew member: student with this netID does not exist")
	ErrCrewHasRelations  = errors.New("crew member is assigned to shows and cannot be deleted")
)

// Show errors
var (
	ErrShowNotFound     = errors.New("show not found")
	ErrShowHasRelations = errors.New("show has characters, scenes or crew assignments and cannot be deleted")
)

// Character errors
var (
	ErrCharacterNotFound      = errors.New("character not found")
	ErrCharacterAlreadyExists = errors.New("this character already exists for this show")
	ErrCharacterRefMissing    = errors.New("cannot add character: referenced netID or showID does not exist")
	ErrCharacterHasRelations  = errors.New("character appears in scenes and cannot be deleted")
)

// Scene errors
var (
	ErrSceneNotFound     = errors.New("scene not found")
	ErrSceneShowGone     = errors.New("cannot add scene: show does not exist")
	ErrSceneHasRelations = errors.New("scene has character details and cannot be deleted")
)

// Scene detail errors
var (
	ErrSceneDetailNotFound      = errors.New("scene detail not found")
	ErrSceneDetailAlreadyExists = errors.New("this character is already detailed for this scene")
	ErrSceneDetailRefMissing    = errors.New("cannot add scene detail: referenced scene or character does not exist")
)

// Crew-in-show errors
var (
	ErrCrewAssignmentNotFound = errors.New("crew assignment not found")
	ErrCrewAssignmentExists   = errors.New("crew member is already assigned to this show")
	ErrCrewAssignmentRefGone  = errors.New("cannot assign crew: referenced crew member or show does not exist")
)

// Staff errors
var (
	ErrStaffNotFound = errors.New("staff account not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewBadRequestError creates a bad-request error carrying a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError creates a validation error carrying a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
