package lifestyle

import (
	"context"
	"fmt"

	"github.com/envirohealth-ai/platform/pkg/common/models"
	"github.com/google/uuid"
)

type Service struct {
	validator *Validator
	repo      *Repository
}

func NewService(validator *Validator, repo *Repository) *Service {
	return &Service{validator: validator, repo: repo}
}

func (s *Service) Create(ctx context.Context, profile models.LifestyleProfile) (*Record, error) {
	if err := s.validator.Validate(profile); err != nil {
		return nil, err
	}

	record, err := newRecord(uuid.New().String(), profile)
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("persisting profile: %w", err)
	}
	return record, nil
}

func (s *Service) Update(ctx context.Context, id string, profile models.LifestyleProfile) (*Record, error) {
	if err := s.validator.Validate(profile); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	record, err := newRecord(id, profile)
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	record.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return record, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Profile loads a stored profile in its engine-facing shape.
func (s *Service) Profile(ctx context.Context, id string) (models.LifestyleProfile, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.LifestyleProfile{}, err
	}
	return record.Profile()
}
