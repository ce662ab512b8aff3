package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/proactivefit/backend/internal/planner"
)

var ErrInvalidProfile = errors.New("invalid profile")

// PlanService validates profiles, generates plans and owns their storage.
type PlanService struct {
	store PlanStore
}

func NewPlanService(store PlanStore) *PlanService {
	return &PlanService{store: store}
}

// GeneratePlan validates the profile, generates the 4-week plan and stores
// it, replacing any previous plan for the same nickname. Nothing is stored
// on failure.
func (s *PlanService) GeneratePlan(ctx context.Context, profile planner.Profile) (*planner.Plan, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	plan, err := planner.Generate(profile)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, profile.Nickname, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetPlan returns the stored plan for a nickname, or ErrPlanNotFound.
func (s *PlanService) GetPlan(ctx context.Context, nickname string) (*planner.Plan, error) {
	return s.store.Get(ctx, nickname)
}

// DeletePlan clears the stored plan. Deleting an absent plan is a no-op.
func (s *PlanService) DeletePlan(ctx context.Context, nickname string) error {
	return s.store.Delete(ctx, nickname)
}
