package team

import "github.com/stretchr/testify/mock"

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) CreateTeam(t *Team) (*Team, error) {
	args := m.Called(t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Team), args.Error(1)
}

func (m *MockTeamRepository) GetTeam(id string) (*Team, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Team), args.Error(1)
}

func (m *MockTeamRepository) GetTeams() ([]Team, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Team), args.Error(1)
}

func (m *MockTeamRepository) UpdateTeam(t *Team) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTeamRepository) DeleteTeam(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTeamRepository) DeleteAllTeams() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTeamRepository) CountTeams() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
