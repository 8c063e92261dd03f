package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"reportshub/dto"
	"reportshub/internal/apperr"
	"reportshub/internal/models"
	"reportshub/internal/repository"
)

const TokenTTL = 30 * time.Minute

type AuthService struct {
	users     repository.UserRepository
	locations repository.LocationRepository
	secret    string
}

func NewAuthService(users repository.UserRepository, locations repository.LocationRepository, secret string) *AuthService {
	return &AuthService{users: users, locations: locations, secret: secret}
}

// Register creates an unapproved USER account. Login is gated on an
// admin approving it.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	taken, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("Username or email already registered")
	}

	if req.LocationID != nil {
		if _, err := s.locations.FindByID(ctx, *req.LocationID); err != nil {
			if errors.Is(err, repository.ErrNoDocument) {
				return nil, apperr.Validation("Invalid location")
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		LocationID:   req.LocationID,
		Approved:     false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

// Login verifies credentials, rejects unapproved accounts and issues a
// short-lived HS256 bearer token with the username as subject.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, string, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, "", apperr.Unauthorized("Incorrect username or password")
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", apperr.Unauthorized("Incorrect username or password")
	}
	if !user.Approved {
		return nil, "", apperr.Forbidden("Account not approved yet. Please contact administrator.")
	}

	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, signed, nil
}
