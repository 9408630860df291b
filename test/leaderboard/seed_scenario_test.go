package leaderboard_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/octofit/octofit-backend/internal/activity"
	"github.com/octofit/octofit-backend/internal/leaderboard"
	"github.com/octofit/octofit-backend/internal/team"
	"github.com/octofit/octofit-backend/internal/user"
	"github.com/stretchr/testify/assert"
)

var seedActivityTypes = []string{"Running", "Cycling", "Swimming", "Weight Training", "Boxing", "Yoga"}

var seedDistanceTypes = map[string]bool{
	"Running":  true,
	"Cycling":  true,
	"Swimming": true,
}

// buildSeedDataset mirrors the demo data generation rules: two teams of
// five users, user i gets 3+(i%3) activities with duration 30+15j and
// calories duration*8.
func buildSeedDataset() ([]user.User, []activity.Activity, map[string]team.Team) {
	teams := map[string]team.Team{
		"t1": {ID: "t1", Name: "Team Marvel"},
		"t2": {ID: "t2", Name: "Team DC"},
	}

	users := []user.User{}
	for i := 0; i < 10; i++ {
		teamID := "t1"
		if i >= 5 {
			teamID = "t2"
		}
		users = append(users, user.User{
			ID:     fmt.Sprintf("u%02d", i),
			Name:   fmt.Sprintf("Hero %d", i),
			TeamID: teamID,
		})
	}

	now := time.Now()
	activities := []activity.Activity{}
	for i, u := range users {
		numActivities := 3 + (i % 3)
		for j := 0; j < numActivities; j++ {
			activityType := seedActivityTypes[j%len(seedActivityTypes)]
			duration := 30 + (j * 15)

			var distance *float64
			if seedDistanceTypes[activityType] {
				d := (float64(duration) / 60) * 10
				distance = &d
			}

			activities = append(activities, activity.Activity{
				ID:             fmt.Sprintf("a%02d-%d", i, j),
				UserID:         u.ID,
				ActivityType:   activityType,
				Duration:       duration,
				CaloriesBurned: duration * 8,
				Distance:       distance,
				Date:           now.Add(-time.Duration(i)*24*time.Hour - time.Duration(j)*time.Hour),
			})
		}
	}

	return users, activities, teams
}

func TestSeedScenario_TenRankedEntries(t *testing.T) {
	users, activities, teams := buildSeedDataset()

	entries, err := leaderboard.Recompute(users, activities, teams)
	assert.NoError(t, err)
	assert.Len(t, entries, 10)

	seen := map[int]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.Rank], "rank %d assigned twice", e.Rank)
		seen[e.Rank] = true
		assert.GreaterOrEqual(t, e.Rank, 1)
		assert.LessOrEqual(t, e.Rank, 10)
	}

	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].TotalCalories, entries[i].TotalCalories)
	}
}

func TestSeedScenario_TotalsFollowGenerationRule(t *testing.T) {
	users, activities, teams := buildSeedDataset()

	entries, err := leaderboard.Recompute(users, activities, teams)
	assert.NoError(t, err)

	byUser := map[string]leaderboard.Entry{}
	for _, e := range entries {
		byUser[e.UserID] = e
	}

	for i, u := range users {
		numActivities := 3 + (i % 3)
		wantCalories := 0
		for j := 0; j < numActivities; j++ {
			wantCalories += (30 + j*15) * 8
		}

		e := byUser[u.ID]
		assert.Equal(t, numActivities, e.TotalActivities)
		assert.Equal(t, wantCalories, e.TotalCalories)
	}
}

func TestSeedScenario_TeamDenormalization(t *testing.T) {
	users, activities, teams := buildSeedDataset()

	entries, err := leaderboard.Recompute(users, activities, teams)
	assert.NoError(t, err)

	marvel, dc := 0, 0
	for _, e := range entries {
		switch e.TeamName {
		case "Team Marvel":
			marvel++
		case "Team DC":
			dc++
		}
	}
	assert.Equal(t, 5, marvel)
	assert.Equal(t, 5, dc)
}
