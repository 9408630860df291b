package workout

type Workout struct {
	ID                string `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"not null" json:"name"`
	Description       string `json:"description"`
	Category          string `gorm:"index" json:"category"`
	DifficultyLevel   string `gorm:"index" json:"difficulty_level"`
	EstimatedDuration int    `json:"estimated_duration"`
	EstimatedCalories int    `json:"estimated_calories"`
}
