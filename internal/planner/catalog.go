package planner

// EquipmentTag describes the gear a single exercise requires.
type EquipmentTag string

const (
	TagBodyweight EquipmentTag = "bodyweight"
	TagDumbbells  EquipmentTag = "dumbbells"
	TagBarbell    EquipmentTag = "barbell"
	TagMachine    EquipmentTag = "machine"
)

// EquipmentTier describes what gear a user has access to. Tiers are a
// capability hierarchy, not an exact-match filter: a higher tier admits
// every exercise a lower tier does.
type EquipmentTier string

const (
	TierNone      EquipmentTier = "none"
	TierDumbbells EquipmentTier = "dumbbells"
	TierBarbell   EquipmentTier = "barbell"
	TierGarage    EquipmentTier = "garage"
	TierFull      EquipmentTier = "full"
)

// tierTags maps each tier to the equipment tags it admits.
// "garage" is exactly bodyweight + dumbbells + barbell; only "full"
// admits machine and cable work.
var tierTags = map[EquipmentTier]map[EquipmentTag]bool{
	TierNone:      {TagBodyweight: true},
	TierDumbbells: {TagBodyweight: true, TagDumbbells: true},
	TierBarbell:   {TagBodyweight: true, TagBarbell: true},
	TierGarage:    {TagBodyweight: true, TagDumbbells: true, TagBarbell: true},
	TierFull:      {TagBodyweight: true, TagDumbbells: true, TagBarbell: true, TagMachine: true},
}

// Admits reports whether the tier allows an exercise carrying the given tags.
func (t EquipmentTier) Admits(tags []EquipmentTag) bool {
	allowed, ok := tierTags[t]
	if !ok {
		return false
	}
	for _, tag := range tags {
		if allowed[tag] {
			return true
		}
	}
	return false
}

// FocusAreas selectable in the plan wizard.
var FocusAreas = []string{
	"Chest", "Triceps", "Lats", "Biceps", "Shoulder",
	"Abs", "Forearms", "Traps", "Glutes", "Quads", "Hamstring", "Calves",
}

// Exercise is one catalog entry. ID doubles as the localization key for the
// display name. Every entry carries at least one equipment tag and one
// focus area; the catalog is immutable at runtime.
type Exercise struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Equipment  []EquipmentTag `json:"equipment"`
	FocusAreas []string       `json:"focus_areas"`
}

// HasFocusArea reports whether the exercise targets the given muscle group.
func (e Exercise) HasFocusArea(area string) bool {
	for _, a := range e.FocusAreas {
		if a == area {
			return true
		}
	}
	return false
}

// Catalog returns the full exercise catalog. Callers get a copy of the
// slice header over shared immutable entries; do not mutate entries.
func Catalog() []Exercise {
	return catalog
}

var catalog = []Exercise{
	// Bodyweight
	{ID: "push_up", Name: "Push-ups", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Chest"}},
	{ID: "wide_push_up", Name: "Wide Push-ups", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Chest"}},
	{ID: "diamond_push_up", Name: "Diamond Push-ups", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Chest", "Triceps"}},
	{ID: "decline_push_up", Name: "Decline Push-ups", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Chest", "Shoulder"}},
	{ID: "tricep_dip", Name: "Tricep Dips", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Triceps"}},
	{ID: "close_grip_push_up", Name: "Close Grip Push-ups", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Triceps"}},
	{ID: "chin_up", Name: "Chin-ups", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Biceps", "Lats"}},
	{ID: "inverted_row", Name: "Inverted Rows", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Biceps", "Lats"}},
	{ID: "pike_push_up", Name: "Pike Push-ups", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Shoulder"}},
	{ID: "handstand_hold", Name: "Handstand Hold", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Shoulder"}},
	{ID: "plank_to_down_dog", Name: "Plank to Down Dog", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Shoulder", "Abs"}},
	{ID: "crunch", Name: "Crunches", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Abs"}},
	{ID: "plank", Name: "Plank", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Abs"}},
	{ID: "bicycle_crunch", Name: "Bicycle Crunches", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Abs"}},
	{ID: "leg_raise", Name: "Leg Raises", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Abs"}},
	{ID: "bodyweight_squat", Name: "Squats", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Quads", "Glutes"}},
	{ID: "lunge", Name: "Lunges", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Quads", "Glutes"}},
	{ID: "jump_squat", Name: "Jump Squats", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Quads"}},
	{ID: "wall_sit", Name: "Wall Sit", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Quads"}},
	{ID: "calf_raise", Name: "Calf Raises", Equipment: []EquipmentTag{TagBodyweight}, FocusAreas: []string{"Calves"}},

	// Dumbbells
	{ID: "db_press", Name: "Dumbbell Press", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Chest"}},
	{ID: "db_fly", Name: "Dumbbell Flyes", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Chest"}},
	{ID: "incline_db_press", Name: "Incline Dumbbell Press", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Chest"}},
	{ID: "overhead_tricep_extension", Name: "Overhead Tricep Extension", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Triceps"}},
	{ID: "tricep_kickback", Name: "Tricep Kickbacks", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Triceps"}},
	{ID: "bicep_curl", Name: "Bicep Curls", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Biceps"}},
	{ID: "hammer_curl", Name: "Hammer Curls", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Biceps", "Forearms"}},
	{ID: "concentration_curl", Name: "Concentration Curls", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Biceps"}},
	{ID: "shoulder_press", Name: "Shoulder Press", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Shoulder"}},
	{ID: "lateral_raise", Name: "Lateral Raises", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Shoulder"}},
	{ID: "front_raise", Name: "Front Raises", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Shoulder"}},
	{ID: "db_shrug", Name: "Dumbbell Shrugs", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Traps"}},
	{ID: "russian_twist", Name: "Russian Twists", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Abs"}},
	{ID: "weighted_crunch", Name: "Weighted Crunches", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Abs"}},
	{ID: "goblet_squat", Name: "Goblet Squats", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Quads", "Glutes"}},
	{ID: "db_lunge", Name: "Dumbbell Lunges", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Quads", "Glutes"}},
	{ID: "romanian_deadlift", Name: "Romanian Deadlifts", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Hamstring", "Glutes"}},
	{ID: "wrist_curl", Name: "Wrist Curls", Equipment: []EquipmentTag{TagDumbbells}, FocusAreas: []string{"Forearms"}},

	// Barbell
	{ID: "bench_press", Name: "Barbell Bench Press", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Chest"}},
	{ID: "incline_press", Name: "Incline Press", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Chest"}},
	{ID: "close_grip_bench", Name: "Close Grip Bench", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Triceps", "Chest"}},
	{ID: "skull_crusher", Name: "Skull Crushers", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Triceps"}},
	{ID: "barbell_curl", Name: "Barbell Curls", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Biceps"}},
	{ID: "preacher_curl", Name: "Preacher Curls", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Biceps"}},
	{ID: "military_press", Name: "Military Press", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Shoulder"}},
	{ID: "barbell_row", Name: "Barbell Rows", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Lats", "Traps"}},
	{ID: "barbell_shrug", Name: "Barbell Shrugs", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Traps"}},
	{ID: "back_squat", Name: "Barbell Squats", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Quads", "Glutes"}},
	{ID: "deadlift", Name: "Deadlifts", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Hamstring", "Glutes", "Lats"}},
	{ID: "hip_thrust", Name: "Hip Thrusts", Equipment: []EquipmentTag{TagBarbell}, FocusAreas: []string{"Glutes"}},

	// Machines and cables
	{ID: "cable_fly", Name: "Cable Flyes", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Chest"}},
	{ID: "chest_press_machine", Name: "Chest Press Machine", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Chest"}},
	{ID: "cable_pushdown", Name: "Cable Pushdowns", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Triceps"}},
	{ID: "cable_curl", Name: "Cable Curls", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Biceps"}},
	{ID: "cable_lateral_raise", Name: "Cable Lateral Raises", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Shoulder"}},
	{ID: "face_pull", Name: "Face Pulls", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Shoulder", "Traps"}},
	{ID: "lat_pulldown", Name: "Lat Pulldowns", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Lats"}},
	{ID: "cable_crunch", Name: "Cable Crunches", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Abs"}},
	{ID: "hanging_leg_raise", Name: "Hanging Leg Raises", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Abs"}},
	{ID: "ab_wheel", Name: "Ab Wheel", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Abs"}},
	{ID: "leg_press", Name: "Leg Press", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Quads", "Glutes"}},
	{ID: "hamstring_curl", Name: "Hamstring Curls", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Hamstring"}},
	{ID: "leg_extension", Name: "Leg Extensions", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Quads"}},
	{ID: "seated_calf_raise", Name: "Seated Calf Raises", Equipment: []EquipmentTag{TagMachine}, FocusAreas: []string{"Calves"}},
}

// Eligible returns the catalog entries admitted by the equipment tier that
// target at least one of the requested focus areas. With no focus areas the
// filter is equipment-only.
func Eligible(tier EquipmentTier, focusAreas []string) []Exercise {
	var out []Exercise
	for _, ex := range catalog {
		if !tier.Admits(ex.Equipment) {
			continue
		}
		if len(focusAreas) > 0 && !intersects(ex.FocusAreas, focusAreas) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
