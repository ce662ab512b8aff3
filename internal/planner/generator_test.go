package planner

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() Profile {
	return Profile{
		Nickname:   "alex",
		Gender:     "other",
		Height:     178,
		HeightUnit: "cm",
		Weight:     74,
		WeightUnit: "kg",
		Age:        29,
		Goal:       GoalBuild,
		FocusAreas: []string{"Chest", "Abs"},
		Experience: ExperienceBeginner,
		Frequency:  3,
		Equipment:  TierDumbbells,
	}
}

func TestGeneratePlanShape(t *testing.T) {
	profile := validProfile()
	plan, err := Generate(profile)
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, plan.SchemaVersion)
	assert.Len(t, plan.Days, 4*profile.Frequency)

	// Every (week, day) pair appears exactly once, week-major day-minor.
	seen := map[[2]int]bool{}
	i := 0
	for week := 1; week <= 4; week++ {
		for day := 1; day <= profile.Frequency; day++ {
			got := plan.Days[i]
			assert.Equal(t, week, got.Week)
			assert.Equal(t, day, got.Day)
			assert.False(t, seen[[2]int{week, day}])
			seen[[2]int{week, day}] = true
			i++
		}
	}
}

func TestGeneratePrescriptionTable(t *testing.T) {
	cases := []struct {
		name       string
		goal       Goal
		experience Experience
		reps       string
		sets       int
		rest       string
	}{
		{"build newbie", GoalBuild, ExperienceNewbie, "8-10", 3, "60-90 sec"},
		{"build advanced", GoalBuild, ExperienceAdvanced, "6-8", 4, "60-90 sec"},
		{"build intermediate", GoalBuild, ExperienceIntermediate, "8-12", 3, "60-90 sec"},
		{"lose any", GoalLose, ExperienceAdvanced, "12-15", 3, "30-45 sec"},
		{"keep any", GoalKeep, ExperienceNewbie, "10-12", 3, "60-90 sec"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := validProfile()
			profile.Goal = tc.goal
			profile.Experience = tc.experience

			plan, err := Generate(profile)
			require.NoError(t, err)
			require.NotEmpty(t, plan.Days)

			for _, day := range plan.Days {
				require.NotEmpty(t, day.Exercises)
				for _, ex := range day.Exercises {
					assert.Equal(t, tc.reps, ex.Reps)
					assert.Equal(t, tc.sets, ex.Sets)
					assert.Equal(t, tc.rest, ex.Rest)
				}
			}
		})
	}
}

func TestGenerateExerciseCountByExperience(t *testing.T) {
	cases := []struct {
		experience Experience
		max        int
	}{
		{ExperienceNewbie, 3},
		{ExperienceBeginner, 4},
		{ExperienceIntermediate, 4},
		{ExperienceAdvanced, 5},
	}

	for _, tc := range cases {
		profile := validProfile()
		profile.Experience = tc.experience
		profile.FocusAreas = []string{"Chest"}
		profile.Equipment = TierFull

		plan, err := Generate(profile)
		require.NoError(t, err)
		for _, day := range plan.Days {
			assert.LessOrEqual(t, len(day.Exercises), tc.max)
			assert.NotEmpty(t, day.Exercises)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	profile := validProfile()

	first, err := Generate(profile)
	require.NoError(t, err)
	second, err := Generate(profile)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first, second))
}

func TestGenerateFocusAreaRotation(t *testing.T) {
	profile := validProfile()
	profile.FocusAreas = []string{"Chest", "Abs", "Quads"}
	profile.Frequency = 3

	plan, err := Generate(profile)
	require.NoError(t, err)

	// day % len(focusAreas): day 1 -> Abs, day 2 -> Quads, day 3 -> Chest
	assert.Equal(t, "Abs", plan.Days[0].FocusArea)
	assert.Equal(t, "Quads", plan.Days[1].FocusArea)
	assert.Equal(t, "Chest", plan.Days[2].FocusArea)
}

func TestGenerateDayPoolMatchesFocusArea(t *testing.T) {
	profile := validProfile()
	profile.FocusAreas = []string{"Chest", "Abs"}
	profile.Equipment = TierNone

	plan, err := Generate(profile)
	require.NoError(t, err)

	byID := map[string]Exercise{}
	for _, ex := range Catalog() {
		byID[ex.Name] = ex
	}

	for _, day := range plan.Days {
		for _, ex := range day.Exercises {
			entry, ok := byID[ex.Name]
			require.True(t, ok, "unknown exercise %q", ex.Name)
			assert.True(t, entry.HasFocusArea(day.FocusArea),
				"%s does not target %s", ex.Name, day.FocusArea)
		}
	}
}

func TestGenerateNoExercisesAvailable(t *testing.T) {
	profile := validProfile()
	// No bodyweight exercise targets Traps.
	profile.FocusAreas = []string{"Traps"}
	profile.Equipment = TierNone

	plan, err := Generate(profile)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrNoExercisesAvailable)
}

func TestGenerateFallsBackToEligibleSet(t *testing.T) {
	profile := validProfile()
	// No bodyweight exercise targets Traps, but Chest keeps the eligible
	// set non-empty, so Traps days fall back to it.
	profile.FocusAreas = []string{"Chest", "Traps"}
	profile.Equipment = TierNone
	profile.Frequency = 2

	plan, err := Generate(profile)
	require.NoError(t, err)
	for _, day := range plan.Days {
		require.NotEmpty(t, day.Exercises)
		if day.FocusArea != "Traps" {
			continue
		}
		// Fallback exercises come from the whole eligible set.
		for _, ex := range day.Exercises {
			assert.NotEmpty(t, ex.Name)
		}
	}
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, validProfile().Validate())

	cases := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"missing nickname", func(p *Profile) { p.Nickname = "" }},
		{"missing gender", func(p *Profile) { p.Gender = "" }},
		{"zero height", func(p *Profile) { p.Height = 0 }},
		{"zero weight", func(p *Profile) { p.Weight = 0 }},
		{"zero age", func(p *Profile) { p.Age = 0 }},
		{"missing goal", func(p *Profile) { p.Goal = "" }},
		{"no focus areas", func(p *Profile) { p.FocusAreas = nil }},
		{"missing experience", func(p *Profile) { p.Experience = "" }},
		{"frequency too low", func(p *Profile) { p.Frequency = 0 }},
		{"frequency too high", func(p *Profile) { p.Frequency = 8 }},
		{"missing equipment", func(p *Profile) { p.Equipment = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := validProfile()
			tc.mutate(&profile)
			assert.Error(t, profile.Validate())
		})
	}
}
