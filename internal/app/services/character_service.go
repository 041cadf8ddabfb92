package services

import (
	"context"

	"github.com/cabanes/backstage/internal/app/models"
	"github.com/cabanes/backstage/internal/app/models/dto"
	"github.com/cabanes/backstage/internal/pkg/record"
)

// CharacterStore is the persistence surface the character service needs.
type CharacterStore interface {
	GetAll(ctx context.Context) ([]record.Record, error)
	FilterBy(ctx context.Context, alias, column, value string) ([]record.Record, error)
	Create(ctx context.Context, character *models.Character) error
	Update(ctx context.Context, oldName, newName, netID string) error
	Delete(ctx context.Context, characterName string, showID int64) error
}

// CharacterService handles character operations
type CharacterService struct {
	characters CharacterStore
}

// NewCharacterService creates a new character service instance
func NewCharacterService(characters CharacterStore) *CharacterService {
	return &CharacterService{characters: characters}
}

// GetAll retrieves all characters
func (s *CharacterService) GetAll(ctx context.Context) ([]record.Record, error) {
	return s.characters.GetAll(ctx)
}

// FilterBy retrieves characters matching a whitelisted alias/column pair
func (s *CharacterService) FilterBy(ctx context.Context, alias, column, value string) ([]record.Record, error) {
	return s.characters.FilterBy(ctx, alias, column, value)
}

// Add creates a character played by an actor in a show
func (s *CharacterService) Add(ctx context.Context, req *dto.AddCharacterRequest) error {
	character := &models.Character{
		CharacterName: req.CharacterName,
		NetID:         req.NetID,
		ShowID:        req.ShowID,
	}
	return s.characters.Create(ctx, character)
}

// Edit renames a character and recasts its actor, matched by the old name
func (s *CharacterService) Edit(ctx context.Context, req *dto.EditCharacterRequest) error {
	return s.characters.Update(ctx, req.OldCharacterName, req.NewCharacterName, req.NetID)
}

// Delete removes a character by name within a show
func (s *CharacterService) Delete(ctx context.Context, req *dto.DeleteCharacterRequest) error {
	return s.characters.Delete(ctx, req.CharacterName, req.ShowID)
}
