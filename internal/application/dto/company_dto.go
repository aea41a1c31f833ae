package dto

import "time"

// DepartmentDTO departamento de una empresa.
type DepartmentDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateCompanyRequest entrada para crear una empresa junto con su admin.
// Todos los campos de empresa y admin son obligatorios; departments es
// opcional (se aplican los departamentos por defecto).
type CreateCompanyRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	AdminName     string          `json:"adminName"`
	AdminEmail    string          `json:"adminEmail"`
	AdminPassword string          `json:"adminPassword"`
	Departments   []DepartmentDTO `json:"departments"`
}

// UpdateCompanyRequest entrada para actualización parcial de una empresa.
type UpdateCompanyRequest struct {
	Name        *string          `json:"name"`
	Email       *string          `json:"email"`
	Address     *string          `json:"address"`
	Phone       *string          `json:"phone"`
	Departments *[]DepartmentDTO `json:"departments"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
	CompanyAdmin string          `json:"companyAdmin"`
	Employees    []string        `json:"employees"`
	Departments  []DepartmentDTO `json:"departments"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CreateCompanyResponse empresa creada junto con su usuario admin.
type CreateCompanyResponse struct {
	Company CompanyResponse `json:"company"`
	Admin   UserResponse    `json:"companyAdmin"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
