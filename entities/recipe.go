package entities

import (
	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	Title           string     `json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Category        string     `gorm:"index" json:"category"`
	Difficulty      string     `gorm:"index" json:"difficulty"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Servings        int        `json:"servings"`
	Ingredients     StringList `gorm:"type:text" json:"ingredients"`
	Instructions    StringList `gorm:"type:text" json:"instructions"`
	Tags            StringSet  `gorm:"type:text" json:"tags"`
	ImageURL        string     `json:"image_url,omitempty"`
	VideoURL        string     `json:"video_url,omitempty"`
	// Kept in lockstep with recipe_views by the view transaction; never decremented.
	ViewCount int64 `gorm:"not null;default:0" json:"view_count"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
