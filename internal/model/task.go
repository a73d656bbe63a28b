package model

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is one unit of work. TaskID is assigned server-side at creation and
// never changes; UpdatedAt is refreshed on every successful update.
type Task struct {
	TaskID      string    `gorm:"column:task_id;primaryKey;size:64" json:"taskId"`
	Title       string    `gorm:"column:title;size:1024" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Status      string    `gorm:"column:status;size:32;index:idx_task_status" json:"status"`
	Priority    string    `gorm:"column:priority;size:32" json:"priority"`
	DueDate     string    `gorm:"column:due_date;size:64" json:"dueDate,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Task) TableName() string {
	return "tasks"
}
