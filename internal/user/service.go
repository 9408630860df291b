package user

import (
	"github.com/octofit/octofit-backend/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(u User) (*User, error) {
	if u.Name == "" || u.Email == "" || u.Password == "" {
		return nil, apperrors.NewAppError(400, "name, email and password are required", nil)
	}

	created, err := s.repo.CreateUser(&u)
	if err != nil {
		return nil, err
	}

	created.Password = ""
	return created, nil
}

func (s *UserService) Get(id string) (*User, error) {
	u, err := s.repo.GetUser(id)
	if err != nil {
		return nil, err
	}

	u.Password = ""
	return u, nil
}

func (s *UserService) List() ([]User, error) {
	users, err := s.repo.GetUsers()
	if err != nil {
		return nil, err
	}

	return scrubPasswords(users), nil
}

func (s *UserService) ByTeam(teamID string) ([]User, error) {
	users, err := s.repo.GetUsersByTeam(teamID)
	if err != nil {
		return nil, err
	}

	return scrubPasswords(users), nil
}

func (s *UserService) Update(id string, fields User) (*User, error) {
	u, err := s.repo.GetUser(id)
	if err != nil {
		return nil, err
	}

	if fields.Name != "" {
		u.Name = fields.Name
	}
	if fields.Email != "" {
		u.Email = fields.Email
	}
	if fields.TeamID != "" {
		u.TeamID = fields.TeamID
	}

	if err := s.repo.UpdateUser(u); err != nil {
		return nil, err
	}

	u.Password = ""
	return u, nil
}

func (s *UserService) Delete(id string) error {
	return s.repo.DeleteUser(id)
}

func scrubPasswords(users []User) []User {
	for i := range users {
		users[i].Password = ""
	}
	return users
}
