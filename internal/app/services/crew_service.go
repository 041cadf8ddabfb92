package services

import (
	"context"
	"strings"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/record"
)

// CrewStore is the persistence surface the crew service needs.
type CrewStore interface {
	GetAll(ctx context.Context) ([]record.Record, error)
	FilterBy(ctx context.Context, column, value string) ([]record.Record, error)
	Create(ctx context.Context, crew *models.Crew) error
	Update(ctx context.Context, crew *models.Crew) error
	Delete(ctx context.Context, netID string) error
}

// CrewService handles crew profile operations
type CrewService struct {
	crew CrewStore
}

// NewCrewService creates a new crew service instance
func NewCrewService(crew CrewStore) *CrewService {
	return &CrewService{crew: crew}
}

func crewFromFields(netID string, f *dto.CrewFields) *models.Crew {
	return &models.Crew{
		NetID:         netID,
		WigTrained:    f.WigTrained != 0,
		MakeupTrained: f.MakeupTrained != 0,
		MusicReading:  f.MusicReading != 0,
		Lighting:      f.Lighting,
		Sound:         f.Sound,
		Specialty:     f.Specialty,
		Notes:         f.Notes,
	}
}

// GetAll retrieves all crew profiles
func (s *CrewService) GetAll(ctx context.Context) ([]record.Record, error) {
	return s.crew.GetAll(ctx)
}

// FilterBy retrieves crew members whose column contains value
func (s *CrewService) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	return s.crew.FilterBy(ctx, column, value)
}

// Add creates a crew profile for an existing student
func (s *CrewService) Add(ctx context.Context, req *dto.AddCrewRequest) error {
	return s.crew.Create(ctx, crewFromFields(req.NetID, &req.CrewFields))
}

// Edit updates the crew profile identified by netID
func (s *CrewService) Edit(ctx context.Context, req *dto.EditCrewRequest) error {
	return s.crew.Update(ctx, crewFromFields(req.NetID, &req.CrewFields))
}

// Delete removes a crew profile by netID
func (s *CrewService) Delete(ctx context.Context, netID string) error {
	if strings.TrimSpace(netID) == "" {
		return apperrors.NewValidationError("netID is required")
	}
	return s.crew.Delete(ctx, netID)
}
