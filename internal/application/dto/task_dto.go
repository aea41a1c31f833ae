package dto

import "time"

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AssignedTo  string    `json:"assignedTo"`
	CompanyID   string    `json:"companyId"`
	DueDate     time.Time `json:"dueDate"`
}

// UpdateTaskStatusRequest entrada para cambiar el estado de una tarea.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	AssignedTo  string    `json:"assignedTo"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
