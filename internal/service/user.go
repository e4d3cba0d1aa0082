package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/validation"
)

type UserService struct {
	userRepository      repository.UserRepository
	subscriptionService *SubscriptionService
}

func NewUserService(userRepository repository.UserRepository, subscriptionService *SubscriptionService) *UserService {
	return &UserService{
		userRepository:      userRepository,
		subscriptionService: subscriptionService,
	}
}

func (s *UserService) ByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepository.ByID(ctx, id)
}

// EnsureUser returns the user with this email, creating it on a free plan if needed.
func (s *UserService) EnsureUser(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	user, err := s.userRepository.ByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user = &model.User{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	err = s.userRepository.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	err = s.subscriptionService.CreateFreeSubscription(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
