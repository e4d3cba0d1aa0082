package model

import (
	"time"
)

type Subscription struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	PlanID    string    `db:"plan_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)

const (
	SubscriptionPlanFree = "free"
	SubscriptionPlanPro  = "pro"
)

const (
	FeatureWeeklyAnalytics = "weekly_analytics"
	FeatureMoodCorrelation = "mood_correlation"
)

func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}

// IsPro reports whether the subscription carries the pro entitlement.
func (s *Subscription) IsPro() bool {
	return s != nil && s.PlanID == SubscriptionPlanPro && s.IsActive()
}

// HasFeature checks if the subscription has access to a specific feature
func (s *Subscription) HasFeature(feature string) bool {
	if s == nil || !s.IsActive() {
		return false
	}

	features := map[string][]string{
		SubscriptionPlanFree: {},
		SubscriptionPlanPro: {
			FeatureWeeklyAnalytics,
			FeatureMoodCorrelation,
		},
	}

	for _, f := range features[s.PlanID] {
		if f == feature {
			return true
		}
	}

	return false
}
