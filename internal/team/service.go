package team

import "github.com/octofit/octofit-backend/internal/apperrors"

type TeamService struct {
	repo TeamRepository
}

func NewTeamService(repo TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) Create(t Team) (*Team, error) {
	if t.Name == "" {
		return nil, apperrors.NewAppError(400, "name is required", nil)
	}

	return s.repo.CreateTeam(&t)
}

func (s *TeamService) Get(id string) (*Team, error) {
	return s.repo.GetTeam(id)
}

func (s *TeamService) List() ([]Team, error) {
	return s.repo.GetTeams()
}

func (s *TeamService) Update(id string, fields Team) (*Team, error) {
	t, err := s.repo.GetTeam(id)
	if err != nil {
		return nil, err
	}

	if fields.Name != "" {
		t.Name = fields.Name
	}
	if fields.Description != "" {
		t.Description = fields.Description
	}

	if err := s.repo.UpdateTeam(t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *TeamService) Delete(id string) error {
	return s.repo.DeleteTeam(id)
}
