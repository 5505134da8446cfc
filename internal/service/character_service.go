package service

import (
	"context"

	"charforge/internal/domain"
	"charforge/internal/generator"
	"charforge/internal/repository"
)

// CharacterService describes character generation and ownership-scoped CRUD.
type CharacterService interface {
	// Generate produces a character from seed data without persisting it.
	Generate(ctx context.Context, race domain.Race, gender domain.Gender) (*domain.Character, error)
	Save(ctx context.Context, character *domain.Character, ownerID int64) (*domain.Character, error)
	List(ctx context.Context, ownerID int64) ([]domain.Character, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Character, error)
	Update(ctx context.Context, id, ownerID int64, update domain.CharacterUpdate) (*domain.Character, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
}

type characterService struct {
	characters repository.CharacterRepository
	gen        *generator.Generator
}

func NewCharacterService(characters repository.CharacterRepository, gen *generator.Generator) CharacterService {
	return &characterService{characters: characters, gen: gen}
}

func (s *characterService) Generate(ctx context.Context, race domain.Race, gender domain.Gender) (*domain.Character, error) {
	return s.gen.Generate(ctx, race, gender)
}

func (s *characterService) Save(ctx context.Context, character *domain.Character, ownerID int64) (*domain.Character, error) {
	return s.characters.Create(ctx, character, ownerID)
}

func (s *characterService) List(ctx context.Context, ownerID int64) ([]domain.Character, error) {
	return s.characters.ListByOwner(ctx, ownerID)
}

func (s *characterService) Get(ctx context.Context, id, ownerID int64) (*domain.Character, error) {
	return s.characters.Get(ctx, id, ownerID)
}

func (s *characterService) Update(ctx context.Context, id, ownerID int64, update domain.CharacterUpdate) (*domain.Character, error) {
	return s.characters.Update(ctx, id, ownerID, update)
}

func (s *characterService) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	return s.characters.Delete(ctx, id, ownerID)
}
