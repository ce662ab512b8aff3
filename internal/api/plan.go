package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proactivefit/backend/internal/middleware"
	"github.com/proactivefit/backend/internal/planner"
	"github.com/proactivefit/backend/internal/service"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	{
		plans.POST("", h.GeneratePlan)
		plans.GET("/:nickname", h.GetPlan)
		plans.DELETE("/:nickname", h.DeletePlan)
	}
}

// GeneratePlan builds and stores a 4-week plan from the submitted profile.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var profile planner.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), profile)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProfile):
			middleware.RecordPlanGeneration("invalid")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, planner.ErrNoExercisesAvailable):
			middleware.RecordPlanGeneration("no_exercises")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			middleware.RecordPlanGeneration("error")
			log.Printf("Error generating plan: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plan"})
		}
		return
	}

	middleware.RecordPlanGeneration("ok")
	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.planService.GetPlan(c.Request.Context(), c.Param("nickname"))
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No plan found"})
			return
		}
		log.Printf("Error loading plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.planService.DeletePlan(c.Request.Context(), c.Param("nickname")); err != nil {
		log.Printf("Error deleting plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
