package models

import (
	"time"

	"github.com/lib/pq"
)

// Task is a single card on the dashboard board. Assignees holds member
// display names, not foreign keys. Progress and status are independent:
// a completed task is not forced to progress 100.
type Task struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Assignees   pq.StringArray `gorm:"type:text[];not null" json:"assignees"`
	Status      string         `gorm:"not null" json:"status"`   // pending, in-progress, completed
	Category    string         `gorm:"not null" json:"category"` // problem-recognition, solution-development
	Progress    int            `gorm:"not null;default:0" json:"progress"`
	DueDate     string         `gorm:"not null" json:"dueDate"`
	CreatedAt   time.Time      `gorm:"not null" json:"createdAt"`
}
