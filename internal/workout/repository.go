package workout

import (
	"errors"

	"github.com/google/uuid"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/pkg/db"
	"gorm.io/gorm"
)

type WorkoutRepository interface {
	CreateWorkout(w *Workout) (*Workout, error)
	GetWorkout(id string) (*Workout, error)
	GetWorkouts() ([]Workout, error)
	GetWorkoutsByCategory(category string) ([]Workout, error)
	GetWorkoutsByDifficulty(difficulty string) ([]Workout, error)
	UpdateWorkout(w *Workout) error
	DeleteWorkout(id string) error
	DeleteAllWorkouts() error
	CountWorkouts() (int64, error)
}

type gormWorkoutRepository struct{}

func NewWorkoutRepository() WorkoutRepository {
	return &gormWorkoutRepository{}
}

func (r *gormWorkoutRepository) CreateWorkout(w *Workout) (*Workout, error) {
	w.ID = uuid.New().String()
	if err := db.DB.Create(w).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating workout", err)
	}

	return w, nil
}

func (r *gormWorkoutRepository) GetWorkout(id string) (*Workout, error) {
	var w Workout
	result := db.DB.Where("id = ?", id).First(&w)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("workout")
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting workout", result.Error)
	}

	return &w, nil
}

func (r *gormWorkoutRepository) GetWorkouts() ([]Workout, error) {
	workouts := []Workout{}
	if err := db.DB.Find(&workouts).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing workouts", err)
	}

	return workouts, nil
}

func (r *gormWorkoutRepository) GetWorkoutsByCategory(category string) ([]Workout, error) {
	workouts := []Workout{}
	if err := db.DB.Where("category = ?", category).Find(&workouts).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing workouts by category", err)
	}

	return workouts, nil
}

func (r *gormWorkoutRepository) GetWorkoutsByDifficulty(difficulty string) ([]Workout, error) {
	workouts := []Workout{}
	if err := db.DB.Where("difficulty_level = ?", difficulty).Find(&workouts).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing workouts by difficulty", err)
	}

	return workouts, nil
}

func (r *gormWorkoutRepository) UpdateWorkout(w *Workout) error {
	if err := db.DB.Save(w).Error; err != nil {
		return apperrors.NewAppError(500, "error updating workout", err)
	}

	return nil
}

func (r *gormWorkoutRepository) DeleteWorkout(id string) error {
	result := db.DB.Where("id = ?", id).Delete(&Workout{})
	if result.Error != nil {
		return apperrors.NewAppError(500, "error deleting workout", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("workout")
	}

	return nil
}

func (r *gormWorkoutRepository) DeleteAllWorkouts() error {
	if err := db.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Workout{}).Error; err != nil {
		return apperrors.NewAppError(500, "error clearing workouts", err)
	}

	return nil
}

func (r *gormWorkoutRepository) CountWorkouts() (int64, error) {
	var count int64
	if err := db.DB.Model(&Workout{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewAppError(500, "error counting workouts", err)
	}

	return count, nil
}
