package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWorkouts(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/workouts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []WorkoutCategory
	decodeJSON(t, w, &categories)
	require.Len(t, categories, 6)
	for _, cat := range categories {
		assert.NotEmpty(t, cat.ID)
		assert.NotEmpty(t, cat.Title)
		assert.NotEmpty(t, cat.Exercises)
	}
}

func TestListExercises(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/exercises", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var exercises []struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		Equipment  []string `json:"equipment"`
		FocusAreas []string `json:"focus_areas"`
	}
	decodeJSON(t, w, &exercises)
	assert.Greater(t, len(exercises), 40)
}
