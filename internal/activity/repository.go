package activity

import (
	"errors"

	"github.com/google/uuid"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/pkg/db"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	CreateActivity(a *Activity) (*Activity, error)
	GetActivity(id string) (*Activity, error)
	GetActivities() ([]Activity, error)
	GetActivitiesByUser(userID string) ([]Activity, error)
	GetActivitiesByType(activityType string) ([]Activity, error)
	UpdateActivity(a *Activity) error
	DeleteActivity(id string) error
	DeleteAllActivities() error
	CountActivities() (int64, error)
}

type gormActivityRepository struct{}

func NewActivityRepository() ActivityRepository {
	return &gormActivityRepository{}
}

func (r *gormActivityRepository) CreateActivity(a *Activity) (*Activity, error) {
	a.ID = uuid.New().String()
	if err := db.DB.Create(a).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating activity", err)
	}

	return a, nil
}

func (r *gormActivityRepository) GetActivity(id string) (*Activity, error) {
	var a Activity
	result := db.DB.Where("id = ?", id).First(&a)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("activity")
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting activity", result.Error)
	}

	return &a, nil
}

func (r *gormActivityRepository) GetActivities() ([]Activity, error) {
	activities := []Activity{}
	if err := db.DB.Order("date desc").Find(&activities).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing activities", err)
	}

	return activities, nil
}

func (r *gormActivityRepository) GetActivitiesByUser(userID string) ([]Activity, error) {
	activities := []Activity{}
	if err := db.DB.Where("user_id = ?", userID).Order("date desc").Find(&activities).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing activities by user", err)
	}

	return activities, nil
}

func (r *gormActivityRepository) GetActivitiesByType(activityType string) ([]Activity, error) {
	activities := []Activity{}
	if err := db.DB.Where("activity_type = ?", activityType).Order("date desc").Find(&activities).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing activities by type", err)
	}

	return activities, nil
}

func (r *gormActivityRepository) UpdateActivity(a *Activity) error {
	if err := db.DB.Save(a).Error; err != nil {
		return apperrors.NewAppError(500, "error updating activity", err)
	}

	return nil
}

func (r *gormActivityRepository) DeleteActivity(id string) error {
	result := db.DB.Where("id = ?", id).Delete(&Activity{})
	if result.Error != nil {
		return apperrors.NewAppError(500, "error deleting activity", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("activity")
	}

	return nil
}

func (r *gormActivityRepository) DeleteAllActivities() error {
	if err := db.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Activity{}).Error; err != nil {
		return apperrors.NewAppError(500, "error clearing activities", err)
	}

	return nil
}

func (r *gormActivityRepository) CountActivities() (int64, error) {
	var count int64
	if err := db.DB.Model(&Activity{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewAppError(500, "error counting activities", err)
	}

	return count, nil
}
