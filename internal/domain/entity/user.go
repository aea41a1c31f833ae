package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin   = "superadmin"
	RoleCompanyAdmin = "companyadmin"
	RoleEmployee     = "employee"
)

// ValidRole informa si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleEmployee:
		return true
	}
	return false
}

// User representa una identidad del sistema. El email es opcional pero único
// cuando está presente. IsFirstLogin fuerza el cambio de contraseña de las
// cuentas recién aprovisionadas.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Role         string // superadmin, companyadmin, employee
	IsFirstLogin bool
	CompanyIDs   []string // empresas a las que pertenece
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
