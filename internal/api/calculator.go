package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proactivefit/backend/internal/planner"
)

type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

func (h *CalculatorHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/bmi", h.CalculateBMI)
}

type bmiRequest struct {
	WeightKg float64 `json:"weight_kg" binding:"required"`
	HeightCm float64 `json:"height_cm" binding:"required"`
}

// CalculateBMI computes the body mass index for the given measurements.
func (h *CalculatorHandler) CalculateBMI(c *gin.Context) {
	var req bmiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := planner.BMI(req.WeightKg, req.HeightCm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
