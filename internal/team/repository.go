package team

import (
	"errors"

	"github.com/google/uuid"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/pkg/db"
	"gorm.io/gorm"
)

type TeamRepository interface {
	CreateTeam(t *Team) (*Team, error)
	GetTeam(id string) (*Team, error)
	GetTeams() ([]Team, error)
	UpdateTeam(t *Team) error
	DeleteTeam(id string) error
	DeleteAllTeams() error
	CountTeams() (int64, error)
}

type gormTeamRepository struct{}

func NewTeamRepository() TeamRepository {
	return &gormTeamRepository{}
}

func (r *gormTeamRepository) CreateTeam(t *Team) (*Team, error) {
	var exists Team
	result := db.DB.Where("name = ?", t.Name).First(&exists)
	if result.Error == nil {
		return nil, apperrors.NewValidationError("team with this name already exists")
	}

	t.ID = uuid.New().String()
	if err := db.DB.Create(t).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating team", err)
	}

	return t, nil
}

func (r *gormTeamRepository) GetTeam(id string) (*Team, error) {
	var t Team
	result := db.DB.Where("id = ?", id).First(&t)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("team")
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting team", result.Error)
	}

	return &t, nil
}

func (r *gormTeamRepository) GetTeams() ([]Team, error) {
	teams := []Team{}
	if err := db.DB.Find(&teams).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing teams", err)
	}

	return teams, nil
}

func (r *gormTeamRepository) UpdateTeam(t *Team) error {
	if err := db.DB.Save(t).Error; err != nil {
		return apperrors.NewAppError(500, "error updating team", err)
	}

	return nil
}

func (r *gormTeamRepository) DeleteTeam(id string) error {
	result := db.DB.Where("id = ?", id).Delete(&Team{})
	if result.Error != nil {
		return apperrors.NewAppError(500, "error deleting team", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("team")
	}

	return nil
}

func (r *gormTeamRepository) DeleteAllTeams() error {
	if err := db.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Team{}).Error; err != nil {
		return apperrors.NewAppError(500, "error clearing teams", err)
	}

	return nil
}

func (r *gormTeamRepository) CountTeams() (int64, error) {
	var count int64
	if err := db.DB.Model(&Team{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewAppError(500, "error counting teams", err)
	}

	return count, nil
}
