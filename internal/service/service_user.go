package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// userService is the concrete implementation of UserService.
// It exposes read, update and delete operations on the profile of an
// authenticated user. Every method trusts the userID argument to originate
// from a validated session token.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a UserService backed by the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// GetUser returns the user record with the given identifier.
//
// Returns store.ErrNoUserWasFound (wrapped) when the record no longer exists.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateUser rewrites the profile fields (Username, Name, Email) of the
// record identified by user.UserID and returns the updated record.
//
// All three fields must be present; partial updates are rejected with
// ErrInvalidDataProvided. The email is lower-cased before the write so the
// unique index operates on a canonical form.
//
// Returns:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the new email is taken.
//   - store.ErrNoUserWasFound (wrapped) if the record no longer exists.
func (s *userService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Error().Int64("id", user.UserID).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user.Email = strings.ToLower(user.Email)

	updatedUser, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes the account with the given identifier.
//
// Returns store.ErrNoUserWasFound (wrapped) when the record is already gone,
// so a repeated delete with a still-valid token surfaces as not found.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
