package planner

import (
	"fmt"
	"math"
)

// BMIResult holds a computed body mass index and its category band.
type BMIResult struct {
	Value    float64 `json:"bmi"`
	Category string  `json:"category"`
}

// BMI computes weight / (height/100)^2, rounded to one decimal place, and
// classifies it into the four standard bands. Both inputs must be positive.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if weightKg <= 0 {
		return BMIResult{}, fmt.Errorf("weight must be positive")
	}
	if heightCm <= 0 {
		return BMIResult{}, fmt.Errorf("height must be positive")
	}

	heightM := heightCm / 100
	value := weightKg / (heightM * heightM)
	value = math.Round(value*10) / 10

	var category string
	switch {
	case value < 18.5:
		category = "Underweight"
	case value < 25:
		category = "Normal weight"
	case value < 30:
		category = "Overweight"
	default:
		category = "Obese"
	}

	return BMIResult{Value: value, Category: category}, nil
}
