package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proactivefit/backend/internal/planner"
)

// WorkoutCategory is one card in the workout library page.
type WorkoutCategory struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Exercises   []string `json:"exercises"`
}

// workoutLibrary is the static content behind the workouts page.
var workoutLibrary = []WorkoutCategory{
	{
		ID:          "full_body",
		Title:       "Full Body Burn",
		Description: "A high-intensity session hitting every major muscle group.",
		Exercises:   []string{"Burpees", "Mountain Climbers", "Jump Squats", "Push-ups", "Plank"},
	},
	{
		ID:          "upper_body",
		Title:       "Upper Body Strength",
		Description: "Build upper body strength with targeted resistance exercises.",
		Exercises:   []string{"Bench Press", "Pull-ups", "Shoulder Press", "Bicep Curls", "Tricep Dips"},
	},
	{
		ID:          "cardio",
		Title:       "Cardio Blast",
		Description: "Get your heart pumping with these conditioning drills.",
		Exercises:   []string{"Jumping Jacks", "High Knees", "Running in Place", "Jump Rope", "Butt Kicks"},
	},
	{
		ID:          "core",
		Title:       "Core Crusher",
		Description: "Strengthen your core with these effective abdominal exercises.",
		Exercises:   []string{"Crunches", "Russian Twists", "Leg Raises", "Bicycle Crunches", "Plank Hold"},
	},
	{
		ID:          "lower_body",
		Title:       "Lower Body Power",
		Description: "Develop strong legs and glutes with compound movements.",
		Exercises:   []string{"Squats", "Lunges", "Deadlifts", "Leg Press", "Calf Raises"},
	},
	{
		ID:          "mobility",
		Title:       "Mobility & Recovery",
		Description: "Loosen up and recover with gentle stretching work.",
		Exercises:   []string{"Hamstring Stretch", "Quad Stretch", "Shoulder Rolls", "Neck Stretches", "Hip Openers"},
	},
}

type WorkoutsHandler struct{}

func NewWorkoutsHandler() *WorkoutsHandler {
	return &WorkoutsHandler{}
}

func (h *WorkoutsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/workouts", h.ListWorkouts)
	router.GET("/exercises", h.ListExercises)
}

// ListWorkouts returns the static workout library.
func (h *WorkoutsHandler) ListWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, workoutLibrary)
}

// ListExercises exposes the plan generator's exercise catalog.
func (h *WorkoutsHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, planner.Catalog())
}
