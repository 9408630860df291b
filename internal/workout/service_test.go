package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkoutService_Create(t *testing.T) {
	mockRepo := &MockWorkoutRepository{}
	service := NewWorkoutService(mockRepo)

	w := Workout{Name: "Speed Force Cardio", Category: "Cardio", DifficultyLevel: "Intermediate"}
	created := w
	created.ID = "w1"
	mockRepo.On("CreateWorkout", mock.AnythingOfType("*workout.Workout")).Return(&created, nil)

	result, err := service.Create(w)
	assert.NoError(t, err)
	assert.Equal(t, "w1", result.ID)
	mockRepo.AssertExpectations(t)
}

func TestWorkoutService_Create_MissingName(t *testing.T) {
	mockRepo := &MockWorkoutRepository{}
	service := NewWorkoutService(mockRepo)

	_, err := service.Create(Workout{Category: "Cardio"})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CreateWorkout")
}

func TestWorkoutService_ByCategory(t *testing.T) {
	mockRepo := &MockWorkoutRepository{}
	service := NewWorkoutService(mockRepo)

	workouts := []Workout{
		{ID: "w1", Name: "Speed Force Cardio", Category: "Cardio"},
		{ID: "w2", Name: "Atlantean Swimming", Category: "Cardio"},
	}
	mockRepo.On("GetWorkoutsByCategory", "Cardio").Return(workouts, nil)

	result, err := service.ByCategory("Cardio")
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	mockRepo.AssertExpectations(t)
}

func TestWorkoutService_ByDifficulty_Empty(t *testing.T) {
	mockRepo := &MockWorkoutRepository{}
	service := NewWorkoutService(mockRepo)

	mockRepo.On("GetWorkoutsByDifficulty", "Legendary").Return([]Workout{}, nil)

	result, err := service.ByDifficulty("Legendary")
	assert.NoError(t, err)
	assert.Empty(t, result)
	mockRepo.AssertExpectations(t)
}
