package entity

import "time"

// Estados válidos de una tarea.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// ValidTaskStatus informa si status es uno de los estados conocidos.
func ValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task es una tarea asignada a un usuario dentro de una empresa.
type Task struct {
	ID          string
	CompanyID   string
	AssignedTo  string // User asignado
	Name        string
	Description string
	DueDate     time.Time
	Status      string // pending, in-progress, completed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
