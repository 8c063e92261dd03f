package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"reportshub/internal/apperr"
	"reportshub/internal/models"
	"reportshub/internal/repository"
)

type LocationService struct {
	locations repository.LocationRepository
	users     repository.UserRepository
}

func NewLocationService(locations repository.LocationRepository, users repository.UserRepository) *LocationService {
	return &LocationService{locations: locations, users: users}
}

func (s *LocationService) Create(ctx context.Context, name string) (*models.Location, error) {
	taken, err := s.locations.NameTaken(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("Location already exists")
	}

	loc := models.Location{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.locations.Insert(ctx, loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	return s.locations.FindAll(ctx)
}

func (s *LocationService) Rename(ctx context.Context, id, name string) error {
	taken, err := s.locations.NameTaken(ctx, name, id)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Location name already exists")
	}
	err = s.locations.UpdateName(ctx, id, name)
	if errors.Is(err, repository.ErrNoDocument) {
		return apperr.NotFound("Location not found")
	}
	return err
}

// Delete removes a location unless any user still references it.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	inUse, err := s.users.ExistsByLocation(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return apperr.Conflict("Cannot delete location. It is assigned to users.")
	}
	err = s.locations.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoDocument) {
		return apperr.NotFound("Location not found")
	}
	return err
}
