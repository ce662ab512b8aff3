package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planRequest() map[string]interface{} {
	return map[string]interface{}{
		"nickname":    "alex",
		"gender":      "male",
		"height":      180,
		"height_unit": "cm",
		"weight":      80,
		"weight_unit": "kg",
		"age":         27,
		"goal":        "build",
		"focus_areas": []string{"Chest", "Lats"},
		"experience":  "intermediate",
		"frequency":   3,
		"equipment":   "garage",
	}
}

type planResponse struct {
	SchemaVersion int    `json:"schema_version"`
	Nickname      string `json:"nickname"`
	Days          []struct {
		Week      int    `json:"week"`
		Day       int    `json:"day"`
		FocusArea string `json:"focus_area"`
		Exercises []struct {
			Name string `json:"name"`
			Sets int    `json:"sets"`
			Reps string `json:"reps"`
			Rest string `json:"rest"`
		} `json:"exercises"`
	} `json:"plan"`
}

func TestGeneratePlanEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/plans", planRequest(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	var plan planResponse
	decodeJSON(t, w, &plan)
	assert.Equal(t, 1, plan.SchemaVersion)
	assert.Equal(t, "alex", plan.Nickname)
	require.Len(t, plan.Days, 12)

	for _, day := range plan.Days {
		assert.NotEmpty(t, day.Exercises)
		for _, ex := range day.Exercises {
			assert.Equal(t, 3, ex.Sets)
			assert.Equal(t, "8-12", ex.Reps)
			assert.Equal(t, "60-90 sec", ex.Rest)
		}
	}
}

func TestGetPlanAfterGeneration(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/plans", planRequest(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/plans/alex", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var plan planResponse
	decodeJSON(t, w, &plan)
	assert.Len(t, plan.Days, 12)
}

func TestGetPlanNotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/plans/nobody", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePlan(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/plans", planRequest(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/plans/alex", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/plans/alex", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePlanInvalidProfile(t *testing.T) {
	router := setupTestRouter(t)

	req := planRequest()
	req["frequency"] = 9

	w := doJSON(t, router, http.MethodPost, "/api/plans", req, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was stored
	w = doJSON(t, router, http.MethodGet, "/api/plans/alex", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePlanNoExercises(t *testing.T) {
	router := setupTestRouter(t)

	req := planRequest()
	req["focus_areas"] = []string{"Traps"}
	req["equipment"] = "none"

	w := doJSON(t, router, http.MethodPost, "/api/plans", req, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/plans/alex", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
