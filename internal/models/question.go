package models

import (
	"time"
)

type Question struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	// Counters exist in the schema with default 0 but no handler increments
	// them yet. Left untouched on purpose.
	TotalVotes   int       `gorm:"default:0" json:"total_votes"`
	TotalAnswers int       `gorm:"default:0" json:"total_answers"`
	Tags         TagList   `gorm:"type:text" json:"tags"`
	CreatedAt    time.Time `json:"created_at"`

	// Filled at render time, not persisted
	TimeAgo string `gorm:"-" json:"time_ago"`
}
