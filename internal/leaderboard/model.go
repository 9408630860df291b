package leaderboard

// Entry is a denormalized per-user summary. Team fields are copied at
// recompute time so reads never join against the teams collection.
type Entry struct {
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name"`
	TeamID          string  `json:"team_id"`
	TeamName        string  `json:"team_name"`
	TotalActivities int     `json:"total_activities"`
	TotalCalories   int     `json:"total_calories"`
	TotalDistance   float64 `json:"total_distance"`
	Rank            int     `json:"rank"`
}
