package entity

import (
	"strings"
	"time"
)

// Department de una empresa (nombre + descripción opcional).
type Department struct {
	Name        string
	Description string
}

// DefaultDepartments son los departamentos iniciales cuando la empresa se
// crea sin lista propia.
func DefaultDepartments() []Department {
	return []Department{
		{Name: "HR", Description: "Human Resources"},
		{Name: "IT", Description: "Information Technology"},
		{Name: "Finance", Description: "Finance and Accounting"},
		{Name: "Operations", Description: "Operations Management"},
	}
}

// Company representa un tenant: sus datos de contacto, el usuario admin que
// la gobierna, sus departamentos y las referencias a sus registros de empleo.
type Company struct {
	ID          string
	Name        string
	Email       string
	Address     string
	Phone       string
	AdminUserID string   // referencia a User con rol companyadmin
	EmployeeIDs []string // referencias a Employment (lado de lectura)
	Departments []Department
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasDepartment compara contra los departamentos declarados, sin distinguir
// mayúsculas de minúsculas.
func (c *Company) HasDepartment(name string) bool {
	for _, d := range c.Departments {
		if strings.EqualFold(d.Name, name) {
			return true
		}
	}
	return false
}
