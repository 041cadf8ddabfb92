package services

import (
	"context"
	"strings"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/apperrors"
	"github.com/cabanes/backstage/internal/pkg/record"
)

// ActorStore is the persistence surface the actor service needs.
type ActorStore interface {
	GetAll(ctx context.Context) ([]record.Record, error)
	FilterBy(ctx context.Context, column, value string) ([]record.Record, error)
	GetByNetID(ctx context.Context, netID string) (record.Record, error)
	Create(ctx context.Context, actor *models.Actor) error
	Update(ctx context.Context, actor *models.Actor) error
	Delete(ctx context.Context, netID string) error
}

// ActorService handles actor profile operations
type ActorService struct {
	actors ActorStore
}

// NewActorService creates a new actor service instance
func NewActorService(actors ActorStore) *ActorService {
	return &ActorService{actors: actors}
}

func actorFromFields(netID string, f *dto.ActorFields) *models.Actor {
	return &models.Actor{
		NetID:                 netID,
		YearsActingExperience: f.YearsActingExperience,
		SkinTone:              f.SkinTone,
		Piercings:             f.Piercings,
		HairColor:             f.HairColor,
		PreviousInjuries:      f.PreviousInjuries,
		SpecialNotes:          f.SpecialNotes,
		Height:                f.Height,
		RingSize:              f.RingSize,
		ShoeSize:              f.ShoeSize,
		HeadCirc:              f.HeadCirc,
		NeckBase:              f.NeckBase,
		Chest:                 f.Chest,
		Waist:                 f.Waist,
		HighHip:               f.HighHip,
		LowHip:                f.LowHip,
		ArmseyeToArmseyeFront: f.ArmseyeToArmseyeFront,
		NeckToWaistFront:      f.NeckToWaistFront,
		ArmseyeToArmseyeBack:  f.ArmseyeToArmseyeBack,
		NeckToWaistBack:       f.NeckToWaistBack,
		CenterBackToWrist:     f.CenterBackToWrist,
		OutsleeveToWrist:      f.OutsleeveToWrist,
		OutseamBelowKnee:      f.OutseamBelowKnee,
		OutseamToAnkle:        f.OutseamToAnkle,
		OutseamToFloor:        f.OutseamToFloor,
		OtherNotes:            f.OtherNotes,
	}
}

// GetAll retrieves all actor profiles
func (s *ActorService) GetAll(ctx context.Context) ([]record.Record, error) {
	return s.actors.GetAll(ctx)
}

// FilterBy retrieves actors whose column contains value
func (s *ActorService) FilterBy(ctx context.Context, column, value string) ([]record.Record, error) {
	return s.actors.FilterBy(ctx, column, value)
}

// GetByNetID retrieves one actor profile
func (s *ActorService) GetByNetID(ctx context.Context, netID string) (record.Record, error) {
	if strings.TrimSpace(netID) == "" {
		return nil, apperrors.NewValidationError("netID is required")
	}
	return s.actors.GetByNetID(ctx, netID)
}

// Add creates an actor profile for an existing student
func (s *ActorService) Add(ctx context.Context, req *dto.AddActorRequest) error {
	return s.actors.Create(ctx, actorFromFields(req.NetID, &req.ActorFields))
}

// Edit updates the actor profile identified by netID
func (s *ActorService) Edit(ctx context.Context, req *dto.EditActorRequest) error {
	return s.actors.Update(ctx, actorFromFields(req.NetID, &req.ActorFields))
}

// Delete removes an actor profile by netID
func (s *ActorService) Delete(ctx context.Context, netID string) error {
	if strings.TrimSpace(netID) == "" {
		return apperrors.NewValidationError("netID is required")
	}
	return s.actors.Delete(ctx, netID)
}
