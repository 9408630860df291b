package leaderboard

import (
	"testing"

	"github.com/octofit/octofit-backend/internal/activity"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/internal/team"
	"github.com/octofit/octofit-backend/internal/user"
	"github.com/stretchr/testify/assert"
)

func km(v float64) *float64 {
	return &v
}

func testTeams() map[string]team.Team {
	return map[string]team.Team{
		"t1": {ID: "t1", Name: "Team Marvel"},
		"t2": {ID: "t2", Name: "Team DC"},
	}
}

func TestRecompute_Totals(t *testing.T) {
	users := []user.User{{ID: "u1", Name: "Tony Stark", TeamID: "t1"}}
	activities := []activity.Activity{
		{UserID: "u1", ActivityType: "Running", Duration: 30, CaloriesBurned: 240, Distance: km(5.0)},
		{UserID: "u1", ActivityType: "Weight Training", Duration: 45, CaloriesBurned: 360},
		{UserID: "u1", ActivityType: "Cycling", Duration: 60, CaloriesBurned: 480, Distance: km(10.0)},
	}

	entries, err := Recompute(users, activities, testTeams())
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, 3, e.TotalActivities)
	assert.Equal(t, 1080, e.TotalCalories)
	assert.InDelta(t, 15.0, e.TotalDistance, 0.001)
	assert.Equal(t, 1, e.Rank)
	assert.Equal(t, "Team Marvel", e.TeamName)
}

func TestRecompute_ZeroActivityUserIncluded(t *testing.T) {
	users := []user.User{
		{ID: "u1", Name: "Tony Stark", TeamID: "t1"},
		{ID: "u2", Name: "Steve Rogers", TeamID: "t1"},
	}
	activities := []activity.Activity{
		{UserID: "u1", CaloriesBurned: 240},
	}

	entries, err := Recompute(users, activities, testTeams())
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.Equal(t, "u2", entries[1].UserID)
	assert.Equal(t, 0, entries[1].TotalActivities)
	assert.Equal(t, 0, entries[1].TotalCalories)
	assert.Equal(t, 0.0, entries[1].TotalDistance)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestRecompute_OrderAndDenseRank(t *testing.T) {
	users := []user.User{
		{ID: "u1", Name: "Tony Stark", TeamID: "t1"},
		{ID: "u2", Name: "Steve Rogers", TeamID: "t1"},
		{ID: "u3", Name: "Clark Kent", TeamID: "t2"},
	}
	activities := []activity.Activity{
		{UserID: "u1", CaloriesBurned: 200},
		{UserID: "u2", CaloriesBurned: 600},
		{UserID: "u3", CaloriesBurned: 400},
	}

	entries, err := Recompute(users, activities, testTeams())
	assert.NoError(t, err)

	assert.Equal(t, []string{"u2", "u3", "u1"}, []string{entries[0].UserID, entries[1].UserID, entries[2].UserID})
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestRecompute_TieBrokenByUserID(t *testing.T) {
	users := []user.User{
		{ID: "u9", Name: "Barry Allen", TeamID: "t2"},
		{ID: "u2", Name: "Steve Rogers", TeamID: "t1"},
	}
	activities := []activity.Activity{
		{UserID: "u9", CaloriesBurned: 500},
		{UserID: "u2", CaloriesBurned: 500},
	}

	entries, err := Recompute(users, activities, testTeams())
	assert.NoError(t, err)

	assert.Equal(t, "u2", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "u9", entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestRecompute_DanglingTeamReference(t *testing.T) {
	users := []user.User{{ID: "u1", Name: "Tony Stark", TeamID: "ghost"}}

	entries, err := Recompute(users, nil, testTeams())
	assert.Nil(t, entries)
	assert.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, 422, appErr.Code)
	assert.Contains(t, appErr.Message, "u1")
	assert.Contains(t, appErr.Message, "ghost")
}

func TestRecompute_UserWithoutTeam(t *testing.T) {
	users := []user.User{{ID: "u1", Name: "Solo Runner"}}
	activities := []activity.Activity{{UserID: "u1", CaloriesBurned: 100}}

	entries, err := Recompute(users, activities, testTeams())
	assert.NoError(t, err)
	assert.Empty(t, entries[0].TeamID)
	assert.Empty(t, entries[0].TeamName)
}

func TestRecompute_IgnoresOrphanActivities(t *testing.T) {
	users := []user.User{{ID: "u1", Name: "Tony Stark", TeamID: "t1"}}
	activities := []activity.Activity{
		{UserID: "u1", CaloriesBurned: 100},
		{UserID: "deleted-user", CaloriesBurned: 999},
	}

	entries, err := Recompute(users, activities, testTeams())
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 100, entries[0].TotalCalories)
}

func TestRecompute_EmptyInputs(t *testing.T) {
	entries, err := Recompute(nil, nil, testTeams())
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
