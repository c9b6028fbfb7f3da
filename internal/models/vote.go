package models

import (
	"time"
)

// Vote is part of the schema but no route reads or writes it yet.
type Vote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"user_id"`
	QuestionID uint      `gorm:"index" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}
