package user

import (
	"errors"

	"github.com/google/uuid"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/pkg/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(u *User) (*User, error)
	GetUser(id string) (*User, error)
	GetUsers() ([]User, error)
	GetUsersByTeam(teamID string) ([]User, error)
	UpdateUser(u *User) error
	DeleteUser(id string) error
	DeleteAllUsers() error
	CountUsers() (int64, error)
}

type gormUserRepository struct{}

func NewUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) CreateUser(u *User) (*User, error) {
	var exists User
	result := db.DB.Where("email = ?", u.Email).First(&exists)
	if result.Error == nil {
		return nil, apperrors.NewValidationError("user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error hashing password", err)
	}

	u.ID = uuid.New().String()
	u.Password = string(hashed)

	if err := db.DB.Create(u).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating user", err)
	}

	return u, nil
}

func (r *gormUserRepository) GetUser(id string) (*User, error) {
	var u User
	result := db.DB.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("user")
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting user", result.Error)
	}

	return &u, nil
}

func (r *gormUserRepository) GetUsers() ([]User, error) {
	users := []User{}
	if err := db.DB.Find(&users).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing users", err)
	}

	return users, nil
}

func (r *gormUserRepository) GetUsersByTeam(teamID string) ([]User, error) {
	users := []User{}
	if err := db.DB.Where("team_id = ?", teamID).Find(&users).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing users by team", err)
	}

	return users, nil
}

func (r *gormUserRepository) UpdateUser(u *User) error {
	if err := db.DB.Save(u).Error; err != nil {
		return apperrors.NewAppError(500, "error updating user", err)
	}

	return nil
}

func (r *gormUserRepository) DeleteUser(id string) error {
	result := db.DB.Where("id = ?", id).Delete(&User{})
	if result.Error != nil {
		return apperrors.NewAppError(500, "error deleting user", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user")
	}

	return nil
}

func (r *gormUserRepository) DeleteAllUsers() error {
	if err := db.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&User{}).Error; err != nil {
		return apperrors.NewAppError(500, "error clearing users", err)
	}

	return nil
}

func (r *gormUserRepository) CountUsers() (int64, error) {
	var count int64
	if err := db.DB.Model(&User{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewAppError(500, "error counting users", err)
	}

	return count, nil
}
