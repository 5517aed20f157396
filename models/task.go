package models

import (
	"errors"
	"time"
)

// Task is the sole persisted entity. ID and CreatedAt are system-generated
// and never change after insert; title and description are the only mutable
// fields.
type Task struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TaskInput is the request schema shared by create and update. Both fields
// are required; there is no partial-update variant.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (in TaskInput) Validate() error {
	if in.Title == "" || in.Description == "" {
		return errors.New("title and description are required")
	}
	return nil
}
