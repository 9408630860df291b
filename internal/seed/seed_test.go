package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemoDataset_Shape(t *testing.T) {
	assert.Len(t, marvelUsers, 5)
	assert.Len(t, dcUsers, 5)
	assert.Len(t, demoWorkouts, 8)

	emails := map[string]bool{}
	for _, d := range append(append([]demoUser{}, marvelUsers...), dcUsers...) {
		assert.False(t, emails[d.email], "duplicate email %s", d.email)
		emails[d.email] = true
		assert.NotEmpty(t, d.name)
		assert.NotEmpty(t, d.password)
	}
}

func TestDemoDataset_DistanceTypes(t *testing.T) {
	for _, at := range activityTypes {
		switch at {
		case "Running", "Cycling", "Swimming":
			assert.True(t, distanceTypes[at])
		default:
			assert.False(t, distanceTypes[at])
		}
	}
}

func TestDemoDataset_WorkoutFields(t *testing.T) {
	for _, w := range demoWorkouts {
		assert.NotEmpty(t, w.Name)
		assert.NotEmpty(t, w.Category)
		assert.NotEmpty(t, w.DifficultyLevel)
		assert.Greater(t, w.EstimatedDuration, 0)
		assert.Greater(t, w.EstimatedCalories, 0)
	}
}
