package domain

import "errors"

const (
	TaskTypeWork     = "work"
	TaskTypePersonal = "personal"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is a single to-do item owned by a user.
type Task struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Title    string `json:"title"`
	Done     bool   `json:"done"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date,omitempty"` // optional ISO date
}
