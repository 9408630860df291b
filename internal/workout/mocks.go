package workout

import "github.com/stretchr/testify/mock"

type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) CreateWorkout(w *Workout) (*Workout, error) {
	args := m.Called(w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Workout), args.Error(1)
}

func (m *MockWorkoutRepository) GetWorkout(id string) (*Workout, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Workout), args.Error(1)
}

func (m *MockWorkoutRepository) GetWorkouts() ([]Workout, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Workout), args.Error(1)
}

func (m *MockWorkoutRepository) GetWorkoutsByCategory(category string) ([]Workout, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Workout), args.Error(1)
}

func (m *MockWorkoutRepository) GetWorkoutsByDifficulty(difficulty string) ([]Workout, error) {
	args := m.Called(difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Workout), args.Error(1)
}

func (m *MockWorkoutRepository) UpdateWorkout(w *Workout) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockWorkoutRepository) DeleteWorkout(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWorkoutRepository) DeleteAllWorkouts() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWorkoutRepository) CountWorkouts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
