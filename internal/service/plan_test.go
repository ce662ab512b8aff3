package service

import (
	"context"
	"testing"

	"github.com/proactivefit/backend/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() planner.Profile {
	return planner.Profile{
		Nickname:   "alex",
		Gender:     "female",
		Height:     170,
		HeightUnit: "cm",
		Weight:     65,
		WeightUnit: "kg",
		Age:        31,
		Goal:       planner.GoalLose,
		FocusAreas: []string{"Abs", "Quads"},
		Experience: planner.ExperienceBeginner,
		Frequency:  4,
		Equipment:  planner.TierNone,
	}
}

func TestGeneratePlanStoresResult(t *testing.T) {
	store := NewMemoryPlanStore()
	svc := NewPlanService(store)
	ctx := context.Background()

	plan, err := svc.GeneratePlan(ctx, testProfile())
	require.NoError(t, err)
	assert.Len(t, plan.Days, 16)

	stored, err := svc.GetPlan(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, plan.SchemaVersion, stored.SchemaVersion)
	assert.Equal(t, plan.Days, stored.Days)
}

func TestGeneratePlanOverwritesPrevious(t *testing.T) {
	svc := NewPlanService(NewMemoryPlanStore())
	ctx := context.Background()

	_, err := svc.GeneratePlan(ctx, testProfile())
	require.NoError(t, err)

	profile := testProfile()
	profile.Frequency = 2
	_, err = svc.GeneratePlan(ctx, profile)
	require.NoError(t, err)

	stored, err := svc.GetPlan(ctx, "alex")
	require.NoError(t, err)
	assert.Len(t, stored.Days, 8)
}

func TestGeneratePlanInvalidProfile(t *testing.T) {
	svc := NewPlanService(NewMemoryPlanStore())
	ctx := context.Background()

	profile := testProfile()
	profile.Frequency = 0

	_, err := svc.GeneratePlan(ctx, profile)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = svc.GetPlan(ctx, "alex")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestGeneratePlanNoExercisesStoresNothing(t *testing.T) {
	svc := NewPlanService(NewMemoryPlanStore())
	ctx := context.Background()

	profile := testProfile()
	profile.FocusAreas = []string{"Traps"}
	profile.Equipment = planner.TierNone

	_, err := svc.GeneratePlan(ctx, profile)
	assert.ErrorIs(t, err, planner.ErrNoExercisesAvailable)

	_, err = svc.GetPlan(ctx, "alex")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestDeletePlan(t *testing.T) {
	svc := NewPlanService(NewMemoryPlanStore())
	ctx := context.Background()

	_, err := svc.GeneratePlan(ctx, testProfile())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlan(ctx, "alex"))
	_, err = svc.GetPlan(ctx, "alex")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// Deleting an absent plan is a no-op.
	assert.NoError(t, svc.DeletePlan(ctx, "alex"))
}
