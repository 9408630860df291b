package activity

import "github.com/stretchr/testify/mock"

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CreateActivity(a *Activity) (*Activity, error) {
	args := m.Called(a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Activity), args.Error(1)
}

func (m *MockActivityRepository) GetActivity(id string) (*Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Activity), args.Error(1)
}

func (m *MockActivityRepository) GetActivities() ([]Activity, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Activity), args.Error(1)
}

func (m *MockActivityRepository) GetActivitiesByUser(userID string) ([]Activity, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Activity), args.Error(1)
}

func (m *MockActivityRepository) GetActivitiesByType(activityType string) ([]Activity, error) {
	args := m.Called(activityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Activity), args.Error(1)
}

func (m *MockActivityRepository) UpdateActivity(a *Activity) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockActivityRepository) DeleteActivity(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockActivityRepository) DeleteAllActivities() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockActivityRepository) CountActivities() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
