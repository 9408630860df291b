package activity

import (
	"time"

	"github.com/octofit/octofit-backend/internal/apperrors"
)

type ActivityService struct {
	repo ActivityRepository
}

func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) Create(a Activity) (*Activity, error) {
	if a.UserID == "" || a.ActivityType == "" {
		return nil, apperrors.NewAppError(400, "user_id and activity_type are required", nil)
	}
	if a.Duration < 0 || a.CaloriesBurned < 0 {
		return nil, apperrors.NewAppError(400, "duration and calories_burned must be non-negative", nil)
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}

	return s.repo.CreateActivity(&a)
}

func (s *ActivityService) Get(id string) (*Activity, error) {
	return s.repo.GetActivity(id)
}

// List returns activities newest first.
func (s *ActivityService) List() ([]Activity, error) {
	return s.repo.GetActivities()
}

func (s *ActivityService) ByUser(userID string) ([]Activity, error) {
	return s.repo.GetActivitiesByUser(userID)
}

func (s *ActivityService) ByType(activityType string) ([]Activity, error) {
	return s.repo.GetActivitiesByType(activityType)
}

func (s *ActivityService) Update(id string, fields Activity) (*Activity, error) {
	a, err := s.repo.GetActivity(id)
	if err != nil {
		return nil, err
	}

	if fields.ActivityType != "" {
		a.ActivityType = fields.ActivityType
	}
	if fields.Duration > 0 {
		a.Duration = fields.Duration
	}
	if fields.CaloriesBurned > 0 {
		a.CaloriesBurned = fields.CaloriesBurned
	}
	if fields.Distance != nil {
		a.Distance = fields.Distance
	}
	if !fields.Date.IsZero() {
		a.Date = fields.Date
	}
	if fields.Notes != "" {
		a.Notes = fields.Notes
	}

	if err := s.repo.UpdateActivity(a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *ActivityService) Delete(id string) error {
	return s.repo.DeleteActivity(id)
}
