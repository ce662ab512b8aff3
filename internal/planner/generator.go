package planner

import (
	"errors"
	"fmt"
)

// ErrNoExercisesAvailable is returned when the equipment tier and focus
// areas leave nothing to build a plan from.
var ErrNoExercisesAvailable = errors.New("no exercises available for the selected equipment and focus areas")

// Goal is what the user trains for.
type Goal string

const (
	GoalBuild Goal = "build"
	GoalKeep  Goal = "keep"
	GoalLose  Goal = "lose"
)

// Experience is the user's self-reported training experience.
type Experience string

const (
	ExperienceNewbie       Experience = "newbie"
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

const (
	// SchemaVersion is stamped into every generated plan document so the
	// stored blob can evolve safely.
	SchemaVersion = 1

	planWeeks = 4

	// Focus area used when no focus areas were selected. Not reachable
	// through the API, which rejects empty selections.
	defaultFocusArea = "Full Body"
)

// Profile is the wizard input the plan is generated from.
type Profile struct {
	Nickname   string        `json:"nickname"`
	Gender     string        `json:"gender"`
	Height     float64       `json:"height"`
	HeightUnit string        `json:"height_unit"`
	Weight     float64       `json:"weight"`
	WeightUnit string        `json:"weight_unit"`
	Age        int           `json:"age"`
	Goal       Goal          `json:"goal"`
	FocusAreas []string      `json:"focus_areas"`
	Experience Experience    `json:"experience"`
	Frequency  int           `json:"frequency"`
	Equipment  EquipmentTier `json:"equipment"`
}

// Validate checks the fields the wizard requires before generation.
func (p Profile) Validate() error {
	switch {
	case p.Nickname == "":
		return fmt.Errorf("nickname is required")
	case p.Gender == "":
		return fmt.Errorf("gender is required")
	case p.Height <= 0:
		return fmt.Errorf("height must be positive")
	case p.Weight <= 0:
		return fmt.Errorf("weight must be positive")
	case p.Age <= 0:
		return fmt.Errorf("age must be positive")
	case p.Goal == "":
		return fmt.Errorf("goal is required")
	case len(p.FocusAreas) == 0:
		return fmt.Errorf("at least one focus area is required")
	case p.Experience == "":
		return fmt.Errorf("experience is required")
	case p.Frequency < 1 || p.Frequency > 7:
		return fmt.Errorf("frequency must be between 1 and 7")
	case p.Equipment == "":
		return fmt.Errorf("equipment is required")
	}
	return nil
}

// PlanExercise is one assigned exercise with its prescription.
type PlanExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

// PlanDay is one workout in the calendar.
type PlanDay struct {
	Week      int            `json:"week"`
	Day       int            `json:"day"`
	FocusArea string         `json:"focus_area"`
	Exercises []PlanExercise `json:"exercises"`
}

// Plan is the full 4-week calendar, stored as a single versioned document.
type Plan struct {
	SchemaVersion int `json:"schema_version"`
	Profile
	Days []PlanDay `json:"plan"`
}

// prescription is the (sets, reps, rest) triple shared by every exercise in
// a plan, fixed by goal and experience.
func prescription(goal Goal, experience Experience) (sets int, reps, rest string) {
	sets, reps = 3, "10-12"
	switch goal {
	case GoalBuild:
		switch experience {
		case ExperienceNewbie:
			reps = "8-10"
		case ExperienceAdvanced:
			reps, sets = "6-8", 4
		default:
			reps = "8-12"
		}
	case GoalLose:
		reps = "12-15"
	}

	rest = "60-90 sec"
	if goal == GoalLose {
		rest = "30-45 sec"
	}
	return sets, reps, rest
}

func exercisesPerDay(experience Experience) int {
	switch experience {
	case ExperienceNewbie:
		return 3
	case ExperienceAdvanced:
		return 5
	default:
		return 4
	}
}

// Generate produces the plan for a profile. It is deterministic: the same
// profile and catalog always yield the same plan. On failure nothing is
// produced; there are no partial plans.
func Generate(profile Profile) (*Plan, error) {
	eligible := Eligible(profile.Equipment, profile.FocusAreas)
	if len(eligible) == 0 {
		return nil, ErrNoExercisesAvailable
	}

	sets, reps, rest := prescription(profile.Goal, profile.Experience)
	perDay := exercisesPerDay(profile.Experience)

	plan := &Plan{
		SchemaVersion: SchemaVersion,
		Profile:       profile,
		Days:          make([]PlanDay, 0, planWeeks*profile.Frequency),
	}

	for week := 1; week <= planWeeks; week++ {
		for day := 1; day <= profile.Frequency; day++ {
			area := defaultFocusArea
			if len(profile.FocusAreas) > 0 {
				area = profile.FocusAreas[day%len(profile.FocusAreas)]
			}

			pool := poolForArea(eligible, area)
			exercises := make([]PlanExercise, 0, perDay)
			for i := 0; i < perDay && i < len(pool); i++ {
				exercises = append(exercises, PlanExercise{
					Name: pool[i].Name,
					Sets: sets,
					Reps: reps,
					Rest: rest,
				})
			}

			plan.Days = append(plan.Days, PlanDay{
				Week:      week,
				Day:       day,
				FocusArea: area,
				Exercises: exercises,
			})
		}
	}

	return plan, nil
}

// poolForArea narrows the eligible set to one focus area, falling back to
// the whole eligible set when the day's area has no matches.
func poolForArea(eligible []Exercise, area string) []Exercise {
	var pool []Exercise
	for _, ex := range eligible {
		if ex.HasFocusArea(area) {
			pool = append(pool, ex)
		}
	}
	if len(pool) == 0 {
		return eligible
	}
	return pool
}
