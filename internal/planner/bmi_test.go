package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	cases := []struct {
		weight   float64
		height   float64
		want     float64
		category string
	}{
		{70, 175, 22.9, "Normal weight"},
		{50, 170, 17.3, "Underweight"},
		{80, 170, 27.7, "Overweight"},
		{100, 170, 34.6, "Obese"},
	}

	for _, tc := range cases {
		result, err := BMI(tc.weight, tc.height)
		require.NoError(t, err)
		assert.Equal(t, tc.want, result.Value)
		assert.Equal(t, tc.category, result.Category)
	}
}

func TestBMIRejectsNonPositiveInputs(t *testing.T) {
	_, err := BMI(0, 175)
	assert.Error(t, err)

	_, err = BMI(70, 0)
	assert.Error(t, err)

	_, err = BMI(-70, -175)
	assert.Error(t, err)
}
