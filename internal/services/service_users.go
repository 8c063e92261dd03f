package services

import (
	"context"
	"errors"

	"reportshub/internal/apperr"
	"reportshub/internal/models"
	"reportshub/internal/repository"
)

type UserAdminService struct {
	users repository.UserRepository
}

func NewUserAdminService(users repository.UserRepository) *UserAdminService {
	return &UserAdminService{users: users}
}

func (s *UserAdminService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserAdminService) Approve(ctx context.Context, id string) error {
	err := s.users.SetApproved(ctx, id, true)
	if errors.Is(err, repository.ErrNoDocument) {
		return apperr.NotFound("User not found")
	}
	return err
}

func (s *UserAdminService) SetRole(ctx context.Context, id, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return apperr.Validation("Invalid role. Must be USER or ADMIN")
	}
	err := s.users.SetRole(ctx, id, role)
	if errors.Is(err, repository.ErrNoDocument) {
		return apperr.NotFound("User not found")
	}
	return err
}

// Delete removes a user account. Admins cannot delete themselves.
func (s *UserAdminService) Delete(ctx context.Context, id string, actor models.User) error {
	if id == actor.ID {
		return apperr.Validation("Cannot delete your own account")
	}
	err := s.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoDocument) {
		return apperr.NotFound("User not found")
	}
	return err
}
