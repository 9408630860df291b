package workout

import "github.com/octofit/octofit-backend/internal/apperrors"

type WorkoutService struct {
	repo WorkoutRepository
}

func NewWorkoutService(repo WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

func (s *WorkoutService) Create(w Workout) (*Workout, error) {
	if w.Name == "" {
		return nil, apperrors.NewAppError(400, "name is required", nil)
	}

	return s.repo.CreateWorkout(&w)
}

func (s *WorkoutService) Get(id string) (*Workout, error) {
	return s.repo.GetWorkout(id)
}

func (s *WorkoutService) List() ([]Workout, error) {
	return s.repo.GetWorkouts()
}

func (s *WorkoutService) ByCategory(category string) ([]Workout, error) {
	return s.repo.GetWorkoutsByCategory(category)
}

func (s *WorkoutService) ByDifficulty(difficulty string) ([]Workout, error) {
	return s.repo.GetWorkoutsByDifficulty(difficulty)
}

func (s *WorkoutService) Update(id string, fields Workout) (*Workout, error) {
	w, err := s.repo.GetWorkout(id)
	if err != nil {
		return nil, err
	}

	if fields.Name != "" {
		w.Name = fields.Name
	}
	if fields.Description != "" {
		w.Description = fields.Description
	}
	if fields.Category != "" {
		w.Category = fields.Category
	}
	if fields.DifficultyLevel != "" {
		w.DifficultyLevel = fields.DifficultyLevel
	}
	if fields.EstimatedDuration > 0 {
		w.EstimatedDuration = fields.EstimatedDuration
	}
	if fields.EstimatedCalories > 0 {
		w.EstimatedCalories = fields.EstimatedCalories
	}

	if err := s.repo.UpdateWorkout(w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *WorkoutService) Delete(id string) error {
	return s.repo.DeleteWorkout(id)
}
