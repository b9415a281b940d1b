package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusActive    TaskStatus = "active"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusArchived  TaskStatus = "archived"
)

// TaskStatuses lists every valid status in display order.
var TaskStatuses = []TaskStatus{TaskStatusActive, TaskStatusCompleted, TaskStatusArchived}

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusActive, TaskStatusCompleted, TaskStatusArchived:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s TaskStatus) String() string {
	return string(s)
}

// TaskStatusList renders the valid statuses as "active, completed, archived".
func TaskStatusList() string {
	names := make([]string, 0, len(TaskStatuses))
	for _, s := range TaskStatuses {
		names = append(names, string(s))
	}

	return strings.Join(names, ", ")
}

// Task is a unit of work owned by exactly one user.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"` // Owner. Set at creation and never changed.
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Matches reports whether the title or description contains query, ignoring case.
// An empty query matches every task.
func (t *Task) Matches(query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}

	return t.Description != nil && strings.Contains(strings.ToLower(*t.Description), q)
}
