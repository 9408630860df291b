package admin

import (
	"os"

	"github.com/octofit/octofit-backend/internal/activity"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/internal/leaderboard"
	"github.com/octofit/octofit-backend/internal/seed"
	"github.com/octofit/octofit-backend/internal/team"
	"github.com/octofit/octofit-backend/internal/user"
	"github.com/octofit/octofit-backend/internal/workout"
	"golang.org/x/crypto/bcrypt"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Stats struct {
	Teams              int64 `json:"teams"`
	Users              int64 `json:"users"`
	Activities         int64 `json:"activities"`
	LeaderboardEntries int64 `json:"leaderboard_entries"`
	Workouts           int64 `json:"workouts"`
}

// AdminService backs the operator console: login, collection counts and
// the seed/reset trigger. Console credentials come from the environment
// (ADMIN_EMAIL, ADMIN_PASSWORD_HASH), not from the users collection.
type AdminService struct {
	users      user.UserRepository
	teams      team.TeamRepository
	activities activity.ActivityRepository
	workouts   workout.WorkoutRepository
	board      *leaderboard.LeaderboardService
	seeder     *seed.Seeder
}

func NewAdminService(
	users user.UserRepository,
	teams team.TeamRepository,
	activities activity.ActivityRepository,
	workouts workout.WorkoutRepository,
	board *leaderboard.LeaderboardService,
	seeder *seed.Seeder,
) *AdminService {
	return &AdminService{
		users:      users,
		teams:      teams,
		activities: activities,
		workouts:   workouts,
		board:      board,
		seeder:     seeder,
	}
}

func (s *AdminService) Login(creds Credentials) (string, error) {
	email := os.Getenv("ADMIN_EMAIL")
	hash := os.Getenv("ADMIN_PASSWORD_HASH")

	if creds.Email != email || email == "" {
		return "", apperrors.NewAppError(401, "invalid credentials", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return "", apperrors.NewAppError(401, "invalid credentials", err)
	}

	token, err := GenerateJWT(creds.Email)
	if err != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", err)
	}
	return token, nil
}

func (s *AdminService) Stats() (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.Teams, err = s.teams.CountTeams(); err != nil {
		return nil, err
	}
	if stats.Users, err = s.users.CountUsers(); err != nil {
		return nil, err
	}
	if stats.Activities, err = s.activities.CountActivities(); err != nil {
		return nil, err
	}
	if stats.Workouts, err = s.workouts.CountWorkouts(); err != nil {
		return nil, err
	}
	if stats.LeaderboardEntries, err = s.board.Count(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *AdminService) Seed() (*seed.Summary, error) {
	return s.seeder.Run()
}
