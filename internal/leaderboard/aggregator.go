package leaderboard

import (
	"sort"

	"github.com/octofit/octofit-backend/internal/activity"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/internal/team"
	"github.com/octofit/octofit-backend/internal/user"
)

// Recompute builds one entry per user from the full activity set, sorted
// by total calories descending and assigned a dense 1-based rank. Ties
// are broken by ascending user ID so the ordering is deterministic.
//
// Users without activities get all-zero totals. A user whose team
// reference cannot be resolved aborts the whole recomputation; nothing
// is published on a dangling reference.
func Recompute(users []user.User, activities []activity.Activity, teams map[string]team.Team) ([]Entry, error) {
	byUser := make(map[string][]activity.Activity, len(users))
	for _, a := range activities {
		byUser[a.UserID] = append(byUser[a.UserID], a)
	}

	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entry := Entry{
			UserID:   u.ID,
			UserName: u.Name,
		}

		for _, a := range byUser[u.ID] {
			entry.TotalActivities++
			entry.TotalCalories += a.CaloriesBurned
			if a.Distance != nil {
				entry.TotalDistance += *a.Distance
			}
		}

		if u.TeamID != "" {
			t, ok := teams[u.TeamID]
			if !ok {
				return nil, apperrors.NewDanglingReferenceError(u.ID, u.TeamID)
			}
			entry.TeamID = t.ID
			entry.TeamName = t.Name
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalCalories != entries[j].TotalCalories {
			return entries[i].TotalCalories > entries[j].TotalCalories
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
