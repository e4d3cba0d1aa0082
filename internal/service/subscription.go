package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/repository"
)

var (
	ErrUnknownPlan = errors.New("unknown plan")
)

type SubscriptionService struct {
	repo repository.SubscriptionRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{repo: repo}
}

func (s *SubscriptionService) CreateFreeSubscription(ctx context.Context, userID string) error {
	now := time.Now()
	subscription := &model.Subscription{
		ID:        uuid.New().String(),
		UserID:    userID,
		PlanID:    model.SubscriptionPlanFree,
		Status:    model.SubscriptionStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(ctx, subscription)
	if err != nil {
		return fmt.Errorf("failed to create free subscription: %w", err)
	}

	return nil
}

func (s *SubscriptionService) Subscription(ctx context.Context, userID string) (*model.Subscription, error) {
	sub, err := s.repo.ByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return sub, nil
}

// ChangePlan moves an existing subscription to another plan. Billing happens
// elsewhere; this only records the resulting entitlement.
func (s *SubscriptionService) ChangePlan(ctx context.Context, userID, planID string) (*model.Subscription, error) {
	if planID != model.SubscriptionPlanFree && planID != model.SubscriptionPlanPro {
		return nil, ErrUnknownPlan
	}

	sub, err := s.Subscription(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub.PlanID = planID
	sub.Status = model.SubscriptionStatusActive
	sub.UpdatedAt = time.Now()

	err = s.repo.Update(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return sub, nil
}
