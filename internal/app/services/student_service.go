package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/record"
	"github.com/cabanes/backstage/internal/pkg/validation"
)

// StudentStore is the persistence surface the student service needs.
type StudentStore interface {
	GetAll(ctx context.Context) ([]record.Record, error)
	FilterBy(ctx context.Context, column, value string) ([]record.Record, error)
	GetShows(ctx context.Context, netID string) ([]record.Record, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, oldNetID string, student *models.Student) error
	Delete(ctx context.Context, netID string) error
}

// StudentService handles student roster operations
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{students: students}
}

func validateStudentIdentity(netID, email string) error {
	if !validation.IsValidNetID(netID) {
		return apperrors.NewValidationError(fmt.Sprintf("invalid netID format: %s", netID))
	}
	if email != "" && !validation.IsValidEmail(email) {
		return apperrors.NewValidationError(fmt.Sprintf("invalid email format: %s", email))
	}
	return nil
}

// GetAll retrieves the full roster
func (s *StudentService) GetAll(ctx context.Context) ([]record.Record, error) {
	return s.students.GetAll(ctx)
}

// FilterBy retrieves students whose column contains value
func (s *StudentService) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	return s.students.FilterBy(ctx, column, value)
}

// GetShows retrieves the show history of one student
func (s *StudentService) GetShows(ctx context.Context, netID string) ([]record.Record, error) {
	if strings.TrimSpace(netID) == "" {
		return nil, apperrors.NewValidationError("netID is required")
	}
	return s.students.GetShows(ctx, netID)
}

// Add creates a new student from the request fields
func (s *StudentService) Add(ctx context.Context, req *dto.AddStudentRequest) error {
	if err := validateStudentIdentity(req.NetID, req.Email); err != nil {
		return err
	}

	student := &models.Student{
		NetID:                  req.NetID,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		GradeLevel:             req.GradeLevel,
		Pronouns:               req.Pronouns,
		SpecialNotes:           req.SpecialNotes,
		Email:                  req.Email,
		AllergiesSensitivities: req.AllergiesSensitivities,
	}
	return s.students.Create(ctx, student)
}

// Edit updates the student identified by oldNetID. The netID itself may be
// reassigned; dependent rows are not carried over, so a netID still holding
// actor or crew profiles refuses the reassignment.
func (s *StudentService) Edit(ctx context.Context, oldNetID string, req *dto.EditStudentRequest) error {
	if err := validateStudentIdentity(req.NewNetID, req.Email); err != nil {
		return err
	}

	student := &models.Student{
		NetID:                  req.NewNetID,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		GradeLevel:             req.GradeLevel,
		Pronouns:               req.Pronouns,
		SpecialNotes:           req.SpecialNotes,
		Email:                  req.Email,
		AllergiesSensitivities: req.AllergiesSensitivities,
	}
	return s.students.Update(ctx, oldNetID, student)
}

// Delete removes a student by netID
func (s *StudentService) Delete(ctx context.Context, netID string) error {
	if strings.TrimSpace(netID) == "" {
		return apperrors.NewValidationError("netID is required")
	}
	return s.students.Delete(ctx, netID)
}
