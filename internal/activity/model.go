package activity

import "time"

// Distance is only set for distance-based activity types (Running,
// Cycling, Swimming); a nil pointer keeps it out of sums and JSON.
type Activity struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"index;not null" json:"user_id"`
	ActivityType   string    `gorm:"index;not null" json:"activity_type"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"calories_burned"`
	Distance       *float64  `json:"distance,omitempty"`
	Date           time.Time `json:"date"`
	Notes          string    `json:"notes"`
}
