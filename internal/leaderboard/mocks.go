package leaderboard

import "github.com/stretchr/testify/mock"

type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Publish(entries []Entry) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *MockSnapshotStore) Active() ([]Entry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockSnapshotStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}
