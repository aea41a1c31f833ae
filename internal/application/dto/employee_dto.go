package dto

import "time"

// AddEmployeeRequest entrada para dar de alta un empleado en una empresa.
type AddEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

// EmploymentResponse salida de un registro de empleo.
type EmploymentResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	CompanyID  string    `json:"companyId"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AddEmployeeResponse usuario y empleo creados.
type AddEmployeeResponse struct {
	User       UserResponse       `json:"user"`
	Employment EmploymentResponse `json:"employment"`
}

// EmployeeDetailResponse empleo con la proyección del usuario vinculado.
type EmployeeDetailResponse struct {
	Employment EmploymentResponse `json:"employment"`
	User       UserResponse       `json:"user"`
}
