package services

import (
	"context"

	"libraryhub/internal/core/domain"
)

// UserService handles borrower registration and management
type UserService struct {
	users UserStore
	clock domain.Clock
	idGen domain.IDGenerator
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// RegisterUserInput represents register user input
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required"`
	City     string `json:"city,omitempty"`
	Category string `json:"category" validate:"required"`
}

// Register validates the input and persists a new user
func (s *UserService) Register(ctx context.Context, input *RegisterUserInput) (*domain.User, error) {
	name, err := domain.ParseName(input.Name)
	if err != nil {
		return nil, err
	}

	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(s.idGen.NewID(), name, input.City, category, s.clock.Now())

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID gets a user by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// List lists all users
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// UpdateUserInput represents update user input
type UpdateUserInput struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Category *string `json:"category"`
}

// Update revalidates the changed fields and refreshes the user
func (s *UserService) Update(ctx context.Context, id string, input *UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := domain.ParseName(*input.Name)
		if err != nil {
			return nil, err
		}
		user.Name = name
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.Category != nil {
		category, err := domain.ParseCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		user.Category = category
	}

	user.UpdatedAt = s.clock.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete deletes a user
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
