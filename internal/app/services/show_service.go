package services

import (
	"context"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/record"
)

// ShowStore is the persistence surface the show service needs.
type ShowStore interface {
	GetAll(ctx context.Context) ([]record.Record, error)
	Search(ctx context.Context, column, value string) ([]record.Record, error)
	GetCrew(ctx context.Context, showID int64) ([]record.Record, error)
	Create(ctx context.Context, show *models.Show) error
	Update(ctx context.Context, show *models.Show) error
	Delete(ctx context.Context, showID int64) error
	AssignCrew(ctx context.Context, assignment *models.CrewAssignment) error
	RemoveCrew(ctx context.Context, crewID string, showID int64) error
}

// ShowService handles show and crew assignment operations
type ShowService struct {
	shows ShowStore
}

// NewShowService creates a new show service instance
func NewShowService(shows ShowStore) *ShowService {
	return &ShowService{shows: shows}
}

// GetAll retrieves all shows
func (s *ShowService) GetAll(ctx context.Context) ([]record.Record, error) {
	return s.shows.GetAll(ctx)
}

// Search resolves shows by ID, name or semester for the pick-a-show widgets
func (s *ShowService) Search(ctx context.Context, column, value string) ([]record.Record, error) {
	return s.shows.Search(ctx, column, value)
}

// GetCrew retrieves the crew roster of one show
func (s *ShowService) GetCrew(ctx context.Context, showID int64) ([]record.Record, error) {
	if showID <= 0 {
		return nil, apperrors.ErrInvalidIdentifier
	}
	return s.shows.GetCrew(ctx, showID)
}

// Add creates a new show
func (s *ShowService) Add(ctx context.Context, req *dto.AddShowRequest) error {
	show := &models.Show{
		ShowName:     req.ShowName,
		YearSemester: req.YearSemester,
		Director:     req.Director,
		Genre:        req.Genre,
		PlayWright:   req.PlayWright,
	}
	return s.shows.Create(ctx, show)
}

// Edit updates the show identified by showID
func (s *ShowService) Edit(ctx context.Context, req *dto.EditShowRequest) error {
	show := &models.Show{
		ShowID:       req.ShowID,
		ShowName:     req.ShowName,
		YearSemester: req.YearSemester,
		Director:     req.Director,
		Genre:        req.Genre,
		PlayWright:   req.PlayWright,
	}
	return s.shows.Update(ctx, show)
}

// Delete removes a show by ID
func (s *ShowService) Delete(ctx context.Context, showID int64) error {
	if showID <= 0 {
		return apperrors.ErrInvalidIdentifier
	}
	return s.shows.Delete(ctx, showID)
}

// AssignCrew places a crew member on a show with their roles
func (s *ShowService) AssignCrew(ctx context.Context, req *dto.AssignCrewRequest) error {
	assignment := &models.CrewAssignment{
		CrewID: req.CrewID,
		ShowID: req.ShowID,
		Roles:  req.Roles,
	}
	return s.shows.AssignCrew(ctx, assignment)
}

// RemoveCrew takes a crew member off a show
func (s *ShowService) RemoveCrew(ctx context.Context, req *dto.RemoveCrewRequest) error {
	return s.shows.RemoveCrew(ctx, req.CrewID, req.ShowID)
}
