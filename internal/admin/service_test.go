package admin

import (
	"os"
	"testing"

	"github.com/octofit/octofit-backend/internal/activity"
	"github.com/octofit/octofit-backend/internal/leaderboard"
	"github.com/octofit/octofit-backend/internal/team"
	"github.com/octofit/octofit-backend/internal/user"
	"github.com/octofit/octofit-backend/internal/workout"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// mockGenerateJWT overrides GenerateJWT in tests
var mockGenerateJWT func(email string) (string, error)

func TestMain(m *testing.M) {
	orig := GenerateJWT
	GenerateJWT = func(email string) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(email)
		}
		return orig(email)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func newTestService() (*AdminService, *user.MockUserRepository, *team.MockTeamRepository, *activity.MockActivityRepository, *workout.MockWorkoutRepository, *leaderboard.MockSnapshotStore) {
	users := &user.MockUserRepository{}
	teams := &team.MockTeamRepository{}
	activities := &activity.MockActivityRepository{}
	workouts := &workout.MockWorkoutRepository{}
	store := &leaderboard.MockSnapshotStore{}
	board := leaderboard.NewLeaderboardService(store)
	service := NewAdminService(users, teams, activities, workouts, board, nil)
	return service, users, teams, activities, workouts, store
}

func TestAdminService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("console_pass"), bcrypt.MinCost)
	assert.NoError(t, err)
	t.Setenv("ADMIN_EMAIL", "admin@octofit.local")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	mockGenerateJWT = func(email string) (string, error) { return "token123", nil }
	defer func() { mockGenerateJWT = nil }()

	service, _, _, _, _, _ := newTestService()

	token, err := service.Login(Credentials{Email: "admin@octofit.local", Password: "console_pass"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("console_pass"), bcrypt.MinCost)
	t.Setenv("ADMIN_EMAIL", "admin@octofit.local")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	service, _, _, _, _, _ := newTestService()

	_, err := service.Login(Credentials{Email: "admin@octofit.local", Password: "nope"})
	assert.Error(t, err)
}

func TestAdminService_Login_UnknownEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@octofit.local")

	service, _, _, _, _, _ := newTestService()

	_, err := service.Login(Credentials{Email: "intruder@octofit.local", Password: "x"})
	assert.Error(t, err)
}

func TestAdminService_Stats(t *testing.T) {
	service, users, teams, activities, workouts, store := newTestService()

	teams.On("CountTeams").Return(int64(2), nil)
	users.On("CountUsers").Return(int64(10), nil)
	activities.On("CountActivities").Return(int64(40), nil)
	workouts.On("CountWorkouts").Return(int64(8), nil)
	store.On("Active").Return(make([]leaderboard.Entry, 10), nil)

	stats, err := service.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.Teams)
	assert.Equal(t, int64(10), stats.Users)
	assert.Equal(t, int64(40), stats.Activities)
	assert.Equal(t, int64(8), stats.Workouts)
	assert.Equal(t, int64(10), stats.LeaderboardEntries)
}
